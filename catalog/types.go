package catalog

// DocumentMatch is a single textual hit inside a source document.
type DocumentMatch struct {
	Page           int    `json:"page"`
	MatchedVariant string `json:"matched_variant"`
	Snippet        string `json:"snippet"`
}

// DocumentEvidence describes one source document a person appears in.
type DocumentEvidence struct {
	Filename           string          `json:"filename"`
	Classification     string          `json:"classification"`
	SourceURL          string          `json:"source_url"`
	SourceAttribution  string          `json:"source_attribution,omitempty"`
	SHA256             string          `json:"sha256,omitempty"`
	VerificationStatus string          `json:"verification_status,omitempty"`
	MatchCount         int             `json:"match_count"`
	Matches            []DocumentMatch `json:"matches,omitempty"`
}

// CustomContent holds optional editorial overrides for a person page. it is
// presentation data only and plays no part in resolution.
type CustomContent struct {
	OneLiner         string `json:"one_liner,omitempty"`
	OneLinerLink     string `json:"one_liner_link,omitempty"`
	ImageURL         string `json:"image_url,omitempty"`
	YouTubeEmbedID   string `json:"youtube_embed_id,omitempty"`
	YouTubeTimestamp int    `json:"youtube_timestamp,omitempty"`
	CustomShareText  string `json:"custom_share_text,omitempty"`
}

// Person is one entry in the people catalog. Slug is unique within the
// catalog but aliased variants of the same real-world person may exist as
// separate entries (e.g. "bill-clinton" and "william-clinton").
type Person struct {
	DisplayName       string             `json:"display_name"`
	Slug              string             `json:"slug"`
	Priority          string             `json:"priority,omitempty"`
	Category          string             `json:"category,omitempty"`
	FoundInDocuments  bool               `json:"found_in_documents"`
	TotalMatches      int                `json:"total_matches"`
	PinpointFileCount int                `json:"pinpoint_file_count,omitempty"`
	PinpointEntityID  string             `json:"pinpoint_entity_id,omitempty"`
	CustomContent     *CustomContent     `json:"custom_content,omitempty"`
	Documents         []DocumentEvidence `json:"documents"`
}

// IsFound reports whether the person counts as "found" for display purposes.
// FoundInDocuments and PinpointFileCount are updated independently by the
// data pipeline, so the OR is recomputed at every read site instead of being
// stored anywhere.
func (p *Person) IsFound() bool {
	return p.FoundInDocuments || p.PinpointFileCount > 0
}

// Metadata describes the catalog snapshot itself.
type Metadata struct {
	Version          string `json:"version"`
	Generated        string `json:"generated,omitempty"`
	Description      string `json:"description,omitempty"`
	TotalNames       int    `json:"total_names"`
	TotalDocuments   int    `json:"total_documents"`
	VerificationNote string `json:"verification_note,omitempty"`
}

// Index is one immutable snapshot of the people catalog. Snapshots are shared
// between concurrent readers and must never be mutated after load.
type Index struct {
	Metadata Metadata `json:"_metadata"`
	People   []Person `json:"people"`
}
