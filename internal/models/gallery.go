package models

// GalleryItem — нормализованная карточка изображения JWST.
type GalleryItem struct {
	URL         string   `json:"url"`
	ObsID       string   `json:"obs"`
	Program     string   `json:"program"`
	Suffix      string   `json:"suffix"`
	Instruments []string `json:"inst"`
	Caption     string   `json:"caption"`
	Link        string   `json:"link"`
	Timestamp   string   `json:"timestamp,omitempty"`
}
