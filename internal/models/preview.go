package models

// PreviewType is the kind of media produced for a scene.
type PreviewType string

const (
	PreviewImage PreviewType = "image"
	PreviewVideo PreviewType = "video"
)

// PreviewResult is a generated scene preview. A video request that fell back
// to an image reports Type == PreviewImage.
type PreviewResult struct {
	URL  string      `json:"url"`
	Type PreviewType `json:"type"`
}

// ImageOptions tunes image generation.
type ImageOptions struct {
	AspectRatio string `json:"aspectRatio,omitempty"`
	Style       string `json:"style,omitempty"`
}

const (
	DefaultImageStyle = "realistic"
)
