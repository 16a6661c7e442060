package style

import "fmt"

// DefaultAspectRatioID is used when an unknown aspect ratio is requested.
const DefaultAspectRatioID = "16:9"

// AspectRatio describes an output frame and the pixel size suggested to the
// image generator for it.
type AspectRatio struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// String returns e.g. "16:9 (1280x720)".
func (a AspectRatio) String() string {
	return fmt.Sprintf("%s (%dx%d)", a.ID, a.Width, a.Height)
}

var aspectRatios = []AspectRatio{
	{ID: "16:9", Name: "Landscape", Width: 1280, Height: 720},
	{ID: "9:16", Name: "Portrait (Shorts)", Width: 720, Height: 1280},
	{ID: "1:1", Name: "Square", Width: 1024, Height: 1024},
	{ID: "4:3", Name: "Classic", Width: 1024, Height: 768},
	{ID: "3:4", Name: "Classic Portrait", Width: 768, Height: 1024},
}

// AspectRatios returns the supported aspect ratios in display order.
func AspectRatios() []AspectRatio {
	result := make([]AspectRatio, len(aspectRatios))
	copy(result, aspectRatios)
	return result
}

// LookupAspectRatio returns the aspect ratio for id without falling back.
func LookupAspectRatio(id string) (AspectRatio, bool) {
	for _, a := range aspectRatios {
		if a.ID == id {
			return a, true
		}
	}
	return AspectRatio{}, false
}

// GetAspectRatio returns the aspect ratio for id, or 16:9 if id is unknown.
func GetAspectRatio(id string) AspectRatio {
	if a, ok := LookupAspectRatio(id); ok {
		return a
	}
	a, _ := LookupAspectRatio(DefaultAspectRatioID)
	return a
}
