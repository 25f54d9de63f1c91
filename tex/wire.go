// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tex

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Packet kind tags, each preceding a request's payload. Responses carry no
// kind tag: each is a single length-prefixed frame.
const (
	kindConversionRequest uint32 = 0
	kindStylesheetRequest uint32 = 1
	kindShutdownRequest   uint32 = 2
)

// writeFrame writes a length-prefixed little-endian uint32 byte string:
// the length of payload, then payload itself.
func writeFrame(w io.Writer, payload []byte) error {
	var lenbuf [4]byte
	binary.LittleEndian.PutUint32(lenbuf[:], uint32(len(payload)))
	if _, err := w.Write(lenbuf[:]); err != nil {
		return fmt.Errorf("tex: writing frame length: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("tex: writing frame payload: %w", err)
	}
	return nil
}

// readFrame reads one length-prefixed little-endian uint32 byte string.
func readFrame(r io.Reader) ([]byte, error) {
	var lenbuf [4]byte
	if _, err := io.ReadFull(r, lenbuf[:]); err != nil {
		return nil, fmt.Errorf("tex: reading frame length: %w", err)
	}
	n := binary.LittleEndian.Uint32(lenbuf[:])
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("tex: reading frame payload: %w", err)
	}
	return payload, nil
}

func writeKind(w io.Writer, kind uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], kind)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("tex: writing packet kind: %w", err)
	}
	return nil
}

func readKind(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("tex: reading packet kind: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// conversionRequest is sent by the client to request that tex be rendered
// with preserveAspectRatio applied to the resulting SVG fragment's root
// element.
type conversionRequest struct {
	preserveAspectRatio string
	tex                 string
}

func writeConversionRequest(w io.Writer, req conversionRequest) error {
	if err := writeKind(w, kindConversionRequest); err != nil {
		return err
	}
	if err := writeFrame(w, []byte(req.preserveAspectRatio)); err != nil {
		return err
	}
	return writeFrame(w, []byte(req.tex))
}

func readConversionRequest(r io.Reader) (conversionRequest, error) {
	par, err := readFrame(r)
	if err != nil {
		return conversionRequest{}, err
	}
	texBytes, err := readFrame(r)
	if err != nil {
		return conversionRequest{}, err
	}
	return conversionRequest{preserveAspectRatio: string(par), tex: string(texBytes)}, nil
}

// conversionResponse carries back the rendered SVG fragment.
type conversionResponse struct {
	svg string
}

func writeConversionResponse(w io.Writer, resp conversionResponse) error {
	return writeFrame(w, []byte(resp.svg))
}

func readConversionResponse(r io.Reader) (conversionResponse, error) {
	svg, err := readFrame(r)
	if err != nil {
		return conversionResponse{}, err
	}
	return conversionResponse{svg: string(svg)}, nil
}

func writeStylesheetRequest(w io.Writer) error {
	return writeKind(w, kindStylesheetRequest)
}

// stylesheetResponse carries back the collaborator's CSS.
type stylesheetResponse struct {
	css string
}

func writeStylesheetResponse(w io.Writer, resp stylesheetResponse) error {
	return writeFrame(w, []byte(resp.css))
}

func readStylesheetResponse(r io.Reader) (stylesheetResponse, error) {
	css, err := readFrame(r)
	if err != nil {
		return stylesheetResponse{}, err
	}
	return stylesheetResponse{css: string(css)}, nil
}

func writeShutdownRequest(w io.Writer) error {
	return writeKind(w, kindShutdownRequest)
}
