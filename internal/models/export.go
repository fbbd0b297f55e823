package models

// Export formats.
const (
	ExportHTML = "html"
	ExportJSON = "json"
)

// BrandInfo is the brand side of an export. It has the same shape as a brief.
type BrandInfo struct {
	BrandName     string        `json:"brandName"`
	ProductName   string        `json:"productName"`
	TalkingPoints []string      `json:"talkingPoints,omitempty"`
	Hashtags      []string      `json:"hashtags,omitempty"`
	Restrictions  []string      `json:"restrictions,omitempty"`
	Duration      string        `json:"duration,omitempty"`
	PlatformSpecs PlatformSpecs `json:"platformSpecs"`
}

// DefaultBrandInfo returns the placeholder brand used when the caller omits it.
func DefaultBrandInfo() BrandInfo {
	return BrandInfo{BrandName: "Brand", ProductName: "Product"}
}

// CreatorInfo identifies the creator in an export.
type CreatorInfo struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// DefaultCreatorInfo returns the placeholder creator used when the caller omits it.
func DefaultCreatorInfo() CreatorInfo {
	return CreatorInfo{Name: "Creator", Handle: "@creator"}
}

// ExportMetadata describes a JSON export.
type ExportMetadata struct {
	BrandName     string `json:"brandName"`
	ProductName   string `json:"productName"`
	CreatorHandle string `json:"creatorHandle"`
	SceneCount    int    `json:"sceneCount"`
	TotalDuration string `json:"totalDuration"`
	Platform      string `json:"platform"`
	Format        string `json:"format"`
	ExportedAt    string `json:"exportedAt"`
}

// ExportRequirements lists what the brand asked for.
type ExportRequirements struct {
	TalkingPoints []string `json:"talkingPoints"`
	Hashtags      []string `json:"hashtags"`
	Restrictions  []string `json:"restrictions"`
}

// ExportDocument is either an HTML document (HTML, Title) or a JSON document
// (Metadata, Storyboard, Requirements) depending on Format.
type ExportDocument struct {
	Format string `json:"-"`

	HTML  string `json:"html,omitempty"`
	Title string `json:"title,omitempty"`

	Metadata     *ExportMetadata     `json:"metadata,omitempty"`
	Storyboard   Storyboard          `json:"storyboard,omitempty"`
	Requirements *ExportRequirements `json:"requirements,omitempty"`
}
