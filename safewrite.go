package chaos

import (
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"os"
	"path"
)

const tmpFolder = "./"

// SafeWrite noisily saves the canvas to a tmp file and then moves it into
// place, picking the encoder from ext (.png, .svg or .pdf).
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	var write func(string) error
	switch ext {
	case ".png":
		write = ctx.WritePNG
	case ".svg":
		write = ctx.WriteSVG
	case ".pdf":
		write = ctx.WritePDF
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}
	return s.SafeWriteFunc(write, prefix, ext)
}

// SafeWriteImage saves an already-rendered image (e.g. a Plot render) as a
// PNG, with the same tmp-file-and-rename dance.
func (s Seed) SafeWriteImage(img image.Image, prefix string) error {
	write := func(fname string) error {
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	}
	return s.SafeWriteFunc(write, prefix, ".png")
}

// SafeWriteFunc runs an arbitrary file writer (gg's SavePNG fits the
// signature) against a tmp file and renames the result to the seed-stamped
// filename.
func (s Seed) SafeWriteFunc(write func(fname string) error, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(write, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(write func(fname string) error, fname string) error {
	if err := maybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	tmpfile, err := ioutil.TempFile(tmpFolder, "chaos.*"+path.Ext(fname))
	if err != nil {
		return err
	}
	if err := write(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}

	return os.Chmod(fname, 0664)
}

func maybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
