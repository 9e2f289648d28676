// Package portaudio is an alternate audio backend for hosts where
// miniaudio is unavailable. Capture and playback run on separate
// streams because the agent ingests and synthesizes at different
// sample rates.
package portaudio

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/koscakluka/bidi-core/core/audio"
)

type Client struct {
	bufferSize int

	captureStream  *portaudio.Stream
	playbackStream *portaudio.Stream

	in  []int16
	out []int16

	leftoverAudio []byte

	mu          sync.Mutex
	stopCapture context.CancelFunc
	playing     bool
}

func NewClient(bufferSize int) (*Client, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	in := make([]int16, bufferSize)
	captureStream, err := portaudio.OpenDefaultStream(1, 0, audio.CaptureSampleRate, bufferSize, in)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open capture stream: %w", err)
	}

	out := make([]int16, bufferSize)
	playbackStream, err := portaudio.OpenDefaultStream(0, 1, audio.PlaybackSampleRate, bufferSize, out)
	if err != nil {
		captureStream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open playback stream: %w", err)
	}

	return &Client{
		bufferSize:     bufferSize,
		captureStream:  captureStream,
		playbackStream: playbackStream,
		in:             in,
		out:            out,
	}, nil
}

func (c *Client) StartCapture(ctx context.Context, onAudio func(audio []byte)) error {
	c.mu.Lock()
	if c.stopCapture != nil {
		c.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	c.stopCapture = cancel
	c.mu.Unlock()

	if err := c.captureStream.Start(); err != nil {
		c.mu.Lock()
		c.stopCapture = nil
		c.mu.Unlock()
		cancel()
		return fmt.Errorf("failed to start capture stream: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.captureStream.Read(); err != nil {
					log.Printf("Failed to read from capture stream: %v", err)
					continue
				}

				audioBuffer := bytes.Buffer{}
				binary.Write(&audioBuffer, binary.LittleEndian, c.in)
				onAudio(audioBuffer.Bytes())
			}
		}
	}()

	return nil
}

func (c *Client) StopCapture() error {
	c.mu.Lock()
	stop := c.stopCapture
	c.stopCapture = nil
	c.mu.Unlock()

	if stop == nil {
		return nil
	}
	stop()

	if err := c.captureStream.Stop(); err != nil {
		return fmt.Errorf("failed to stop capture stream: %w", err)
	}
	return nil
}

func (c *Client) StartPlayback(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.playing {
		return nil
	}

	if err := c.playbackStream.Start(); err != nil {
		return fmt.Errorf("failed to start playback stream: %w", err)
	}
	c.playing = true
	return nil
}

func (c *Client) StopPlayback() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return nil
	}

	if err := c.playbackStream.Stop(); err != nil {
		return fmt.Errorf("failed to stop playback stream: %w", err)
	}
	c.playing = false
	c.leftoverAudio = nil
	return nil
}

func (c *Client) SendAudio(audio []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.playing {
		return fmt.Errorf("playback not started")
	}

	bufferSize := c.bufferSize * 2

	audio = append(c.leftoverAudio, audio...)
	for i := range len(audio)/bufferSize + 1 {
		if (i+1)*bufferSize > len(audio) {
			c.leftoverAudio = make([]byte, len(audio)-i*bufferSize)
			copy(c.leftoverAudio, audio[i*bufferSize:])
			break
		}

		binary.Read(bytes.NewBuffer(audio[i*bufferSize:(i+1)*bufferSize]), binary.LittleEndian, c.out)
		c.playbackStream.Write()
	}

	return nil
}

func (c *Client) ClearBuffer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leftoverAudio = nil
}

func (c *Client) Close() {
	_ = c.StopCapture()
	_ = c.StopPlayback()
	c.captureStream.Close()
	c.playbackStream.Close()
	portaudio.Terminate()
}

func (c *Client) CaptureEncodingInfo() audio.EncodingInfo {
	return audio.GetCaptureEncodingInfo()
}

func (c *Client) PlaybackEncodingInfo() audio.EncodingInfo {
	return audio.GetPlaybackEncodingInfo()
}
