package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reiver/go-oi"
	"github.com/reiver/go-telnet"
	log "github.com/sirupsen/logrus"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

// ConsoleHandler is the TELNET admin console. Commands are
// semicolon-terminated and map one to one onto world operations.
type ConsoleHandler struct {
	World *World
}

// ServeTELNET implements the telnet.Handler interface.
func (h *ConsoleHandler) ServeTELNET(ctx telnet.Context, w telnet.Writer, r telnet.Reader) {
	skipRunes := map[rune]bool{'\n': true, '\r': true, ';': true}

	var buffer [1]byte
	p := buffer[:]

	// Append buffer to a command until ';' met.
	command := []rune{}
	for {
		n, err := r.Read(p)

		var ru rune
		if n > 0 {
			// Buffer is of length 1, ignore the size.
			ru, _ = utf8.DecodeRune(p[:n])
			if !skipRunes[ru] {
				command = append(command, ru)
			}
		}
		if ru == ';' {
			if cmd := strings.TrimSpace(string(command)); cmd != "" {
				oi.LongWriteString(w, h.processCommand(cmd)+"\n")
			}
			command = []rune{}
		}
		if err != nil || ru == utf8.RuneError {
			oi.LongWriteString(w, "Closing...\n")
			break
		}
	}
}

func (h *ConsoleHandler) processCommand(command string) string {
	log.Debugf("Console command: %q", command)

	parts := strings.Split(command, " ")
	switch parts[0] {
	case "add":
		if len(parts) < 3 {
			return "Usage: add x y [r];"
		}
		x, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Sprintf("%v", err)
		}
		y, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return fmt.Sprintf("%v", err)
		}
		c := NewCircle(x, y)
		if len(parts) > 3 {
			r, err := strconv.ParseFloat(parts[3], 64)
			if err != nil {
				return fmt.Sprintf("%v", err)
			}
			c.R = r
		}
		if err := h.World.AddCircle(c); err != nil {
			return fmt.Sprintf("%v", err)
		}
		return fmt.Sprintf("Added circle %s at (%g, %g) r=%g", c.ID, c.Center.X, c.Center.Y, c.R)

	case "scatter":
		n := NRandomCircles
		if len(parts) > 1 {
			parsed, err := strconv.Atoi(parts[1])
			if err != nil {
				return fmt.Sprintf("%v", err)
			}
			n = parsed
		}
		added := h.World.Scatter(n)
		return fmt.Sprintf("Scattered %d of %d circles", added, n)

	case "purge":
		h.World.Purge()
		return "Purged"

	case "query":
		if len(parts) < 3 {
			return "Usage: query x y;"
		}
		x, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return fmt.Sprintf("%v", err)
		}
		y, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return fmt.Sprintf("%v", err)
		}
		ids := h.World.Hover(quadtree.Point{X: x, Y: y})
		if len(ids) == 0 {
			return "No circles at that point"
		}
		lines := make([]string, 0, len(ids))
		for _, id := range ids {
			lines = append(lines, id.String())
		}
		return strings.Join(lines, "\n")

	case "stats":
		s := h.World.Stats()
		return fmt.Sprintf("circles: %d, stored boxes: %d, regions: %d", s.Circles, s.Entries, s.Regions)

	case "snapshot":
		if len(parts) < 2 {
			return "Usage: snapshot path;"
		}
		if err := h.World.RenderBMP(parts[1]); err != nil {
			return fmt.Sprintf("%v", err)
		}
		return fmt.Sprintf("Wrote %s", parts[1])

	case "help":
		return "Commands: add x y [r]; scatter [n]; purge; query x y; stats; snapshot path; help;"
	}
	return fmt.Sprintf("Unrecognized command: %s", command)
}
