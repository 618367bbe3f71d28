package models

import "time"

// Placeholder is the value of any string field the parser could not resolve.
const Placeholder = "-"

// DateLayout is the layout of the 8-digit date code embedded in entries.
const DateLayout = "20060102"

// Record is one parsed report entry.
type Record struct {
	// Category is the bucket the source table was classified into.
	Category Category `json:"category"`
	// Date is the publication date, nil when no valid date code was found.
	Date *time.Time `json:"date"`
	// Title is the headline, or the full combined text when nothing could be derived.
	Title string `json:"title"`
	// Media is the outlet name in title case.
	Media string `json:"media"`
	// Journalist is the author name.
	Journalist string `json:"journalist"`
	// PageNumber is the print page, taken from a "Page N" token.
	PageNumber string `json:"page_number"`
	// Link is the URL starting at the first "http".
	Link string `json:"link"`
}
