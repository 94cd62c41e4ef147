package chaos

import (
	"fmt"
	"image"
	"os"
)

// DecodeImages takes a list of image files and decodes them into image.Image
// values. Files that cannot be read or decoded are skipped with a message, so
// the returned slices may be shorter than the input.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	names := make([]string, 0, len(imageFiles))
	imgs := make([]image.Image, 0, len(imageFiles))

	for _, fName := range imageFiles {
		file, err := os.Open(fName)
		if err != nil {
			fmt.Println(err)
			continue
		}
		img, kind, err := image.Decode(file)
		file.Close()
		if err != nil {
			fmt.Printf("Could not decode %q into a supported image format: %s\n", fName, err)
			continue
		}
		fmt.Printf("Decoded %q as %s\n", fName, kind)
		names = append(names, Basename(fName))
		imgs = append(imgs, img)
	}

	return names, imgs
}

// CenterOffset determines where the origin of an image should be painted so
// it sits centered in a window of the given size. Images at least as large
// as the window draw at (0, 0).
func CenterOffset(img image.Image, winWidth, winHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if img.Bounds().Dx() < winWidth {
		xmargin = (winWidth - img.Bounds().Dx()) / 2
	}
	if img.Bounds().Dy() < winHeight {
		ymargin = (winHeight - img.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
