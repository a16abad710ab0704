// Command psxverb-wav applies the PSX SPU reverb to a stereo WAV file.
//
// Usage:
//
//	psxverb-wav [flags] input.wav output.wav
//
// Examples:
//
//	psxverb-wav -preset 4 -decay 0.8 input.wav output.wav
//	psxverb-wav -preset 5 -mix 0.5 -level 0.7 dry.wav wet.wav
//	psxverb-wav -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-psxverb/dsp/effects/psxverb"
)

const (
	requiredRate     = 44100
	requiredChannels = 2
	requiredBitDepth = 16

	// Frames per processing chunk. Must stay even so no frame is ever left
	// to straddle a chunk boundary.
	chunkFrames = 4096
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	preset := flag.Int("preset", 4, "reverb preset index (0-5)")
	decay := flag.Float64("decay", 0.7, "decay control in [0, 1]; 0.5 is the native preset decay")
	mix := flag.Float64("mix", 0.35, "dry/wet mix in [0, 1]")
	gain := flag.Float64("gain", 0.5, "reverb input gain in [0, 1]; 0.5 is unity")
	level := flag.Float64("level", 0.5, "reverb output level in [0, 1]; 0.25 is unity")
	list := flag.Bool("list", false, "list available presets and exit")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psxverb-wav [flags] input.wav output.wav\n\n")
		fmt.Fprintf(os.Stderr, "Applies the PSX SPU hardware reverb to a 44.1 kHz stereo 16-bit WAV file.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		for i := 0; i < psxverb.PresetCount; i++ {
			fmt.Printf("%d  %s\n", i, psxverb.PresetName(i))
		}
		return nil
	}

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		return errors.New("expected input and output file arguments")
	}
	inputPath, outputPath := args[0], args[1]

	rev, err := psxverb.New(
		psxverb.WithPreset(*preset),
		psxverb.WithDecay(*decay),
		psxverb.WithMix(*mix),
		psxverb.WithInputGain(*gain),
		psxverb.WithReverbLevel(*level),
	)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Preset: %d (%s)", rev.Preset(), psxverb.PresetName(rev.Preset()))
		log.Printf("Decay: %.3f, Mix: %.3f, Gain: %.3f, Level: %.3f",
			rev.Decay(), rev.Mix(), rev.InputGain(), rev.ReverbLevel())
	}

	start := time.Now()
	frames, err := processFile(inputPath, outputPath, rev)
	if err != nil {
		return err
	}

	if *verbose {
		elapsed := time.Since(start)
		log.Printf("Processed %d frames in %.2fs (%.1fx realtime)",
			frames, elapsed.Seconds(),
			float64(frames)/requiredRate/elapsed.Seconds())
	}
	fmt.Printf("%s -> %s (%s)\n",
		filepath.Base(inputPath), filepath.Base(outputPath),
		psxverb.PresetName(rev.Preset()))

	return nil
}

func processFile(inputPath, outputPath string, rev *psxverb.Reverb) (frames int64, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		return 0, fmt.Errorf("not a valid WAV file: %s", inputPath)
	}

	format := dec.Format()
	if format.SampleRate != requiredRate {
		return 0, fmt.Errorf("unsupported sample rate %d Hz (need %d)", format.SampleRate, requiredRate)
	}
	if format.NumChannels != requiredChannels {
		return 0, fmt.Errorf("unsupported channel count %d (need stereo)", format.NumChannels)
	}
	if int(dec.BitDepth) != requiredBitDepth {
		return 0, fmt.Errorf("unsupported bit depth %d (need %d)", dec.BitDepth, requiredBitDepth)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(out, requiredRate, requiredBitDepth, requiredChannels, 1)
	defer func() {
		if closeErr := enc.Close(); err == nil {
			err = closeErr
		}
	}()

	intBuf := &audio.IntBuffer{
		Data:   make([]int, chunkFrames*requiredChannels),
		Format: format,
	}
	block := make([]int16, chunkFrames*requiredChannels)

	for {
		n, readErr := dec.PCMBuffer(intBuf)
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return frames, fmt.Errorf("read audio data: %w", readErr)
		}
		if n == 0 {
			break
		}

		chunk := block[:n]
		for i := 0; i < n; i++ {
			chunk[i] = int16(intBuf.Data[i])
		}

		rev.ProcessBlock(chunk)

		for i := 0; i < n; i++ {
			intBuf.Data[i] = int(chunk[i])
		}
		intBuf.Data = intBuf.Data[:n]
		if err := enc.Write(intBuf); err != nil {
			return frames, fmt.Errorf("write audio data: %w", err)
		}
		intBuf.Data = intBuf.Data[:cap(intBuf.Data)]

		frames += int64(n / requiredChannels)
	}

	return frames, nil
}
