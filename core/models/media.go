package models

// MediaReference points at a stored media asset
type MediaReference struct {
	URL         string `json:"url"`
	FilePath    string `json:"filePath"`
	DisplayName string `json:"displayName"`
}
