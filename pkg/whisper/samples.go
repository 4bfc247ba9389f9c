package whisper

import (
	"fmt"
	"os"

	wcpp "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/go-audio/wav"
)

// DecodeWAV reads a WAV file and returns mono float32 samples in the
// rate the model expects. Multi-channel audio is downmixed by
// averaging; any other sample rate is rejected rather than resampled.
func DecodeWAV(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("audio payload is not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV data: %w", err)
	}

	if int(dec.SampleRate) != wcpp.SampleRate {
		return nil, fmt.Errorf("unsupported sample rate %d, want %d", dec.SampleRate, wcpp.SampleRate)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("audio has no channels")
	}

	floats := buf.AsFloat32Buffer().Data
	if channels == 1 {
		return floats, nil
	}

	// Downmix interleaved channels.
	mono := make([]float32, 0, len(floats)/channels)
	for i := 0; i+channels <= len(floats); i += channels {
		var sum float32
		for c := 0; c < channels; c++ {
			sum += floats[i+c]
		}
		mono = append(mono, sum/float32(channels))
	}
	return mono, nil
}
