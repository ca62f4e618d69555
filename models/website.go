package models

// SitePayload is the published public-website document for a business:
// everything the generated site needs in one read.
type SitePayload struct {
	Business     Business       `json:"business"`
	Services     []Service      `json:"services"`
	Staff        []Staff        `json:"staff"`
	WorkingHours []WorkingHour  `json:"working_hours"`
	Gallery      []GalleryImage `json:"gallery"`
	Reviews      []Review       `json:"reviews"`
}
