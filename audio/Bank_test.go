package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sounds.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testBank = `sounds:
  - id: 0
    name: wall
    wave: square
    notes: [330]
    step: 40ms
  - id: 2
    name: score
    wave: sine
    notes: [523, 0, 784]
    step: 70ms
    volume: 0.5
`

func TestLoadBank(t *testing.T) {
	bank, err := LoadBank(writeBank(t, testBank))
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if bank.Len() != 2 {
		t.Fatalf("Len = %d, want 2", bank.Len())
	}

	wall, ok := bank.Sound(0)
	if !ok {
		t.Fatal("sound 0 missing")
	}
	if wall.Wave != WaveSquare || wall.Step != 40*time.Millisecond || wall.Volume != defaultVolume {
		t.Errorf("wall = %+v", wall)
	}

	score, _ := bank.Sound(2)
	if len(score.Notes) != 3 || score.Notes[1] != 0 || score.Volume != 0.5 {
		t.Errorf("score = %+v", score)
	}

	if _, ok := bank.Sound(1); ok {
		t.Error("sound 1 should not exist")
	}
}

const duplicateIDs = "sounds:\n" +
	"  - {id: 0, wave: sine, notes: [440], step: 10ms}\n" +
	"  - {id: 0, wave: noise, notes: [440], step: 10ms}\n"

func TestLoadBankRejectsInvalidSounds(t *testing.T) {
	tests := map[string]string{
		"unknown wave":  "sounds:\n  - {id: 0, wave: pulse, notes: [440], step: 10ms}\n",
		"no notes":      "sounds:\n  - {id: 0, wave: sine, notes: [], step: 10ms}\n",
		"no step":       "sounds:\n  - {id: 0, wave: sine, notes: [440]}\n",
		"too loud":      "sounds:\n  - {id: 0, wave: sine, notes: [440], step: 10ms, volume: 2}\n",
		"above nyquist": "sounds:\n  - {id: 0, wave: sine, notes: [30000], step: 10ms}\n",
		"duplicate id":  duplicateIDs,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadBank(writeBank(t, body))
			if !errors.Is(err, ErrInvalidSound) {
				t.Errorf("err = %v, want ErrInvalidSound", err)
			}
		})
	}
}

func TestLoadBankMissingFile(t *testing.T) {
	_, err := LoadBank(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing sound bank")
	}
}
