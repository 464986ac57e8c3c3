package game

import "testing"

// The audio manager must initialize and be callable even with no sound
// assets on disk.
func TestAudioManagerNoAssets(t *testing.T) {
	t.Setenv("MAZECHASE_DISABLE_AUDIO", "1")
	am := NewAudioManager("/nonexistent/path")
	am.PlayPellet()
	am.PlayPowerUp()
	am.PlayCapture()
	am.PlayDeath()
	am.PlayWin()
}

func TestSynthBeepWAVHeader(t *testing.T) {
	b := synthBeepWAV(44100, 60, 880)
	if len(b) <= 44 {
		t.Fatalf("wav too short: %d bytes", len(b))
	}
	if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		t.Fatal("missing RIFF/WAVE header")
	}
}
