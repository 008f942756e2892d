// Command sweepdesign materializes and inspects sweep design files.
//
// Usage:
//
//	sweepdesign build [--out sweep.csv] [--plot] design.yaml
//	sweepdesign spectrum [--plot] [--max-freq 200] design.yaml
//	sweepdesign spectrogram [--segment 512] [--window hann] design.yaml
//	sweepdesign correlate [--plot] [--span 0.5] design.yaml
//	sweepdesign laws [--example]
//
// Settings are read from flags and SWEEPDESIGN_* environment variables
// (SWEEPDESIGN_LOG_LEVEL, SWEEPDESIGN_PLOT_WIDTH, SWEEPDESIGN_PLOT_HEIGHT).
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
