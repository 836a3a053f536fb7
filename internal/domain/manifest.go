package domain

type ManifestRow struct {
	Category         string `csv:"Category"`
	Winner           string `csv:"Winner"`
	OriginalFileName string `csv:"Original File Name"`
	CampaignName     string `csv:"Campaign Name"`
}

var ManifestColumns = []string{"Category", "Winner", "Original File Name", "Campaign Name"}
