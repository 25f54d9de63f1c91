// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tex

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// ProcessRenderer speaks the wire protocol in wire.go to a long-lived
// collaborator subprocess (e.g. a small MathJax-backed server), launched
// once and reused for the renderer's entire lifetime.
//
// Adapted from original_source/src/typesetting.rs's
// MathJaxProcessTeXRenderer, which spawned a fresh process per
// conversion; that file's own TODO asked for a persistent process
// instead, which this implementation provides, following
// aclements-go-misc/benchplot/git.go's exec.Command + cmd.Stderr =
// os.Stderr idiom for subprocess management.
type ProcessRenderer struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	mu sync.Mutex
}

// NewProcessRenderer launches path (with args) as the TeX-rendering
// collaborator and returns a ProcessRenderer bound to its stdin/stdout.
// The caller must call Close when done to terminate the subprocess.
func NewProcessRenderer(path string, args ...string) (*ProcessRenderer, error) {
	cmd := exec.Command(path, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("tex: opening stdin pipe to %s: %w", path, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("tex: opening stdout pipe from %s: %w", path, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("tex: starting %s: %w", path, err)
	}

	return &ProcessRenderer{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
	}, nil
}

// Render sends a ConversionRequest and waits for its ConversionResponse.
func (p *ProcessRenderer) Render(texSrc io.Reader, svgDestin io.Writer, preserveAspectRatio string) error {
	texBytes, err := io.ReadAll(texSrc)
	if err != nil {
		return fmt.Errorf("tex: reading tex source: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	req := conversionRequest{preserveAspectRatio: preserveAspectRatio, tex: string(texBytes)}
	if err := writeConversionRequest(p.stdin, req); err != nil {
		return fmt.Errorf("tex: sending conversion request to %s: %w", p.cmd.Path, err)
	}
	resp, err := readConversionResponse(p.stdout)
	if err != nil {
		return fmt.Errorf("tex: reading conversion response from %s: %w", p.cmd.Path, err)
	}
	if _, err := io.WriteString(svgDestin, resp.svg); err != nil {
		return fmt.Errorf("tex: writing rendered fragment: %w", err)
	}
	return nil
}

// Stylesheet sends a StylesheetRequest and returns the collaborator's CSS.
func (p *ProcessRenderer) Stylesheet() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := writeStylesheetRequest(p.stdin); err != nil {
		return "", fmt.Errorf("tex: sending stylesheet request to %s: %w", p.cmd.Path, err)
	}
	resp, err := readStylesheetResponse(p.stdout)
	if err != nil {
		return "", fmt.Errorf("tex: reading stylesheet response from %s: %w", p.cmd.Path, err)
	}
	return resp.css, nil
}

// Close sends a ShutdownRequest and waits for the subprocess to exit.
func (p *ProcessRenderer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := writeShutdownRequest(p.stdin); err != nil {
		return fmt.Errorf("tex: sending shutdown request to %s: %w", p.cmd.Path, err)
	}
	if err := p.stdin.Close(); err != nil {
		return fmt.Errorf("tex: closing stdin to %s: %w", p.cmd.Path, err)
	}
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("tex: waiting for %s to exit: %w", p.cmd.Path, err)
	}
	return nil
}
