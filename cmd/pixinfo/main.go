//go:build !windows && !ios && !android && (amd64 || arm64)

// Command pixinfo prints buffer sizes for an SDL2 pixel encoding and,
// optionally, packs a color through the SDL2 library.
//
//	pixinfo -e YV12 -W 640 -H 480
//	pixinfo -e RGB565 -c 255,0,255
//	pixinfo --list
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/jessevdk/go-flags"
	"github.com/obinnaokechukwu/sdlpix"
	"github.com/sirupsen/logrus"
)

type options struct {
	Encoding string `short:"e" long:"encoding" default:"ARGB8888" description:"Pixel encoding name, e.g. ARGB8888 or YV12"`
	Width    uint   `short:"W" long:"width"    default:"1"        description:"Image width in pixels"`
	Height   uint   `short:"H" long:"height"   default:"1"        description:"Image height in rows"`
	Pitch    uint   `short:"p" long:"pitch"                       description:"Bytes per row (default: width times bytes per pixel)"`
	Count    uint32 `short:"n" long:"count"                       description:"Pixel count (default: width times height)"`
	Color    string `short:"c" long:"color"                       description:"Color r,g,b or r,g,b,a to pack through SDL2"`
	Library  string `short:"L" long:"library"                     description:"Path to the SDL2 shared library"`
	List     bool   `short:"l" long:"list"                        description:"List all encodings and exit"`
	Verbose  bool   `short:"v" long:"verbose"                     description:"Enable debug logging"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagsErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, opts.Verbose)

	if opts.List {
		listEncodings(stdout)
		return 0
	}

	enc, err := sdlpix.ParseEncoding(opts.Encoding)
	if err != nil {
		log.WithError(err).Error("invalid encoding")
		return 1
	}
	if err := describe(stdout, enc, opts); err != nil {
		log.WithError(err).Error("invalid dimensions")
		return 1
	}

	if opts.Color != "" {
		if err := packColor(stdout, log, enc, opts); err != nil {
			log.WithError(err).Error("color conversion failed")
			return 1
		}
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func listEncodings(w io.Writer) {
	for _, e := range sdlpix.Encodings() {
		bpp := "-"
		if n, err := e.BytesPerPixel(); err == nil {
			bpp = strconv.FormatUint(uint64(n), 10)
		}
		fmt.Fprintf(w, "%-12s 0x%08x  %-11s %s\n", e, uint32(e), e.Family(), bpp)
	}
}

// defaultPitch is the luma row size for planar encodings and width times
// bytes per pixel otherwise. Encodings without a byte size fall back to width.
func defaultPitch(enc sdlpix.Encoding, width uint) uint {
	if enc.IsPlanar() {
		return width
	}
	bpp, err := enc.BytesPerPixel()
	if err != nil {
		return width
	}
	return width * uint(bpp)
}

// pixelCount returns opts.Count, or width times height when it is unset.
func pixelCount(opts options) (uint32, error) {
	if opts.Count != 0 {
		return opts.Count, nil
	}
	if opts.Height != 0 && opts.Width > math.MaxUint32/opts.Height {
		return 0, fmt.Errorf("%d x %d pixels overflows the uint32 pixel count", opts.Width, opts.Height)
	}
	return uint32(opts.Width * opts.Height), nil
}

func describe(w io.Writer, enc sdlpix.Encoding, opts options) error {
	count, err := pixelCount(opts)
	if err != nil {
		return err
	}

	row := func(key, value string) {
		fmt.Fprintf(w, "%-18s %s\n", key+":", value)
	}

	row("encoding", fmt.Sprintf("%s (0x%08x)", enc, uint32(enc)))
	row("family", enc.Family().String())

	if bpp, err := enc.BytesPerPixel(); err != nil {
		row("bytes per pixel", "unsupported")
	} else {
		row("bytes per pixel", strconv.FormatUint(uint64(bpp), 10))
	}

	if n, err := enc.BytesForPixelCount(count); err != nil {
		row(fmt.Sprintf("bytes for %d px", count), "unsupported")
	} else {
		row(fmt.Sprintf("bytes for %d px", count), strconv.FormatUint(uint64(n), 10))
	}

	pitch := opts.Pitch
	if pitch == 0 {
		pitch = defaultPitch(enc, opts.Width)
	}
	row("pitch", strconv.FormatUint(uint64(pitch), 10))
	row("buffer size", strconv.FormatUint(uint64(enc.BytesForPitchAndHeight(pitch, opts.Height)), 10))
	row("texture format", textureFormatName(enc.TextureFormat()))
	return nil
}

func textureFormatName(f gputypes.TextureFormat) string {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm:
		return "rgba8unorm"
	case gputypes.TextureFormatBGRA8Unorm:
		return "bgra8unorm"
	default:
		return "none"
	}
}

// parseColor accepts "r,g,b" or "r,g,b,a" with decimal or 0x-prefixed channels.
func parseColor(s string) (sdlpix.Color, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return sdlpix.Color{}, fmt.Errorf("color %q: want r,g,b or r,g,b,a", s)
	}
	var ch [4]uint8
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 8)
		if err != nil {
			return sdlpix.Color{}, fmt.Errorf("color %q: channel %d: %w", s, i, err)
		}
		ch[i] = uint8(v)
	}
	if len(parts) == 3 {
		return sdlpix.RGB(ch[0], ch[1], ch[2]), nil
	}
	return sdlpix.RGBA(ch[0], ch[1], ch[2], ch[3]), nil
}

func packColor(w io.Writer, log *logrus.Logger, enc sdlpix.Encoding, opts options) error {
	c, err := parseColor(opts.Color)
	if err != nil {
		return err
	}

	lib, err := sdlpix.Open(sdlpix.WithLogger(log), sdlpix.WithLibraryPath(opts.Library))
	if err != nil {
		return err
	}
	defer lib.Close()
	if restore, err := lib.RouteNativeLogs(); err == nil {
		defer restore()
	}

	f, err := lib.AllocFormat(enc)
	if err != nil {
		return err
	}
	defer f.Free()

	packed, err := c.ToPacked(f.Format)
	if err != nil {
		return err
	}
	unpacked, err := sdlpix.FromPacked(f.Format, packed)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"color":    c,
		"encoding": enc,
	}).Debug("packed color")

	fmt.Fprintf(w, "%-18s 0x%08x\n", "packed:", packed)
	fmt.Fprintf(w, "%-18s %s\n", "unpacked:", unpacked)
	return nil
}
