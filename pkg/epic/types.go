package epic

// metadataRecord is a single entry of the EPIC metadata response.
// The API returns more fields (caption, coordinates, etc.) but only
// these two are needed to locate the archived image.
type metadataRecord struct {
	Image string `json:"image"`
	Date  string `json:"date"`
}

// ImageRecord describes the most recent image resolved from the
// metadata endpoint. It is produced once per run and handed straight
// to the downloader.
type ImageRecord struct {
	// RemoteURL is the fully qualified archive URL of the image.
	RemoteURL string

	// Name is the unique image identifier, used as the filename component.
	Name string

	// Ext is the file extension of the archived image, including the dot.
	Ext string
}
