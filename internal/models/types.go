package models

import "goesfind/internal/goesfile"

type SearchResult struct {
	Bucket     string                `json:"bucket"`
	Product    string                `json:"product"`
	Start      string                `json:"start"`
	End        string                `json:"end"`
	Files      []goesfile.FileRecord `json:"files"`
	TotalFiles int                   `json:"total_files"`
}

type FindResult struct {
	Bucket        string                `json:"bucket"`
	Satellite     string                `json:"satellite"`
	Product       string                `json:"product"`
	Domain        string                `json:"domain"`
	RequestedTime string                `json:"requested_time"`
	NearestTime   string                `json:"nearest_time"`
	Files         []goesfile.FileRecord `json:"files"`
	TotalFiles    int                   `json:"total_files"`
}

type ProductListing struct {
	Bucket        string   `json:"bucket"`
	Products      []string `json:"products"`
	TotalProducts int      `json:"total_products"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
}
