// Rechaos monitors a sketch folder, reruns the sketch whenever its go file
// changes, and displays any image it produces in a window. Handy feedback
// loop while tuning vertex counts, ratios and palettes.
package main

import (
	"fmt"
	"hash/crc64"
	"image"
	"image/color"
	"image/draw"
	"io/ioutil"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	chaos "github.com/DuroCodes/chaos-game"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Vim writes temp files whose names are all digits; skip those.
var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

var packageMainRx = regexp.MustCompile(`\s?package main\s?`)

type rerunner struct {
	sketchFile string            // go file with package main to rerun
	checksums  map[string]uint64 // crc64 per seen file, to skip no-op writes
}

func main() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Printf("Failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	folder := ""
	r := &rerunner{checksums: make(map[string]uint64)}
	r.sketchFile, err = findMainGo(folder)
	if err != nil || r.sketchFile == "" {
		fmt.Printf("Couldn't find go file with main in folder %q\n", folder)
		return
	}

	done := make(chan bool)
	go r.watchForEvents(watcher)

	// out of the box fsnotify can watch a single file, or a single directory
	if err := watcher.Add(folder); err != nil {
		fmt.Printf("Problem add folder watcher: %v\n", err)
	}
	if folder == "" {
		folder, _ = os.Getwd()
	}
	fmt.Printf("Monitoring folder %q\n", folder)

	<-done
}

func (r *rerunner) watchForEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				go r.rerun(event.Name)
			} else if event.Op&fsnotify.Create == fsnotify.Create {
				go r.newFile(event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Println("ERROR", err)
		}
	}
}

// rerun runs the sketch again after a meaningful change to a go file.
func (r *rerunner) rerun(fname string) {
	if !r.fileChanged(fname) {
		if strings.HasSuffix(fname, ".go") {
			fmt.Printf("File %s unchanged\n", fname)
		}
		return
	}
	if !strings.HasSuffix(fname, ".go") {
		return
	}
	fmt.Printf("Running %s\n", r.sketchFile)
	if cmdOut, err := exec.Command("/usr/bin/go", "run", r.sketchFile).CombinedOutput(); err != nil {
		fmt.Printf("Err: %v: %s\n", err, cmdOut)
	} else {
		fmt.Printf("Done: %s\n", cmdOut)
	}
}

// newFile shows freshly produced images.
func (r *rerunner) newFile(fname string) {
	r.fileChanged(fname)
	if !strings.HasSuffix(fname, ".png") {
		return
	}
	showImage(fname)
}

func (r *rerunner) fileChanged(fname string) bool {
	if onlyDigitsRx.MatchString(chaos.Basename(fname)) {
		return false
	}
	newChecksum := fileChecksum(fname)
	if newChecksum == r.checksums[fname] {
		return false
	}
	r.checksums[fname] = newChecksum
	return true
}

func fileChecksum(fname string) uint64 {
	h := crc64.New(crc64.MakeTable(crc64.ECMA))
	bytes, err := ioutil.ReadFile(fname)
	if err != nil {
		fmt.Printf("Readfile error %q: %v\n", fname, err)
		return 0
	}
	h.Write(bytes)
	return h.Sum64()
}

// findMainGo searches for a go file that has "package main"
func findMainGo(folder string) (string, error) {
	if folder == "" {
		folder = "."
	}
	files, err := ioutil.ReadDir(folder)
	if err != nil {
		return "", err
	}
	for _, f := range files {
		found, err := hasMain(f.Name())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		} else if found {
			return f.Name(), nil
		}
	}
	return "", nil
}

func hasMain(fname string) (bool, error) {
	if !strings.HasSuffix(fname, ".go") {
		return false, nil
	}
	bytes, err := ioutil.ReadFile(fname)
	if err != nil {
		return false, err
	}
	return packageMainRx.Match(bytes), nil
}

func showImage(fname string) {
	driver.Main(func(s screen.Screen) {
		_, imgs := chaos.DecodeImages([]string{fname})
		if len(imgs) == 0 {
			fmt.Printf("No images specified could be shown.\n")
			return
		}
		img := imgs[0]

		// Auto-size the window to the image, capped to something sane.
		rect := img.Bounds()
		winSize := image.Point{rect.Dx(), rect.Dy()}
		if winSize.X > 1000 {
			winSize.X = 1000
		}
		if winSize.Y > 768 {
			winSize.Y = 768
		}

		w, err := s.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
		})
		if err != nil {
			fmt.Println(err)
			return
		}
		defer w.Release()

		b, err := s.NewBuffer(winSize)
		if err != nil {
			fmt.Println(err)
			return
		}
		defer b.Release()

		w.Fill(b.Bounds(), color.White, draw.Src)
		w.Publish()

		var sz size.Event
		for {
			e := w.NextEvent()
			switch e := e.(type) {
			case key.Event:
				switch e.Code {
				case key.CodeEscape, key.CodeQ:
					return
				case key.CodeR:
					if e.Direction == key.DirPress {
						// resize to the image
						sz.WidthPx = rect.Dx()
						sz.HeightPx = rect.Dy()
						b.Release()
						b, err = s.NewBuffer(sz.Size())
						if err != nil {
							fmt.Println(err)
							return
						}
						w.Send(paint.Event{})
					}
				}

			case paint.Event:
				draw.Draw(b.RGBA(), b.Bounds(), img, image.Point{}, draw.Src)
				dp := chaos.CenterOffset(img, sz.WidthPx, sz.HeightPx)
				if dp != (image.Point{}) {
					w.Fill(sz.Bounds(), color.Black, draw.Src)
				}
				w.Upload(dp, b, b.Bounds())
				w.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}
			}
		}
	})
}
