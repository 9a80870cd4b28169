package classify

import "github.com/jdoss/filetidy/internal/model"

// DefaultRules returns the stock rule set written on first run.
func DefaultRules() []model.Rule {
	return []model.Rule{
		{
			Name:        "Images",
			Extensions:  []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp"},
			Destination: "Images",
			Enabled:     true,
		},
		{
			Name:        "Documents",
			Extensions:  []string{".doc", ".docx", ".pdf", ".txt", ".rtf", ".odt"},
			Destination: "Documents",
			Enabled:     true,
		},
		{
			Name:        "Music",
			Extensions:  []string{".mp3", ".wav", ".flac", ".aac", ".ogg"},
			Destination: "Music",
			Enabled:     true,
		},
		{
			Name:        "Videos",
			Extensions:  []string{".mp4", ".avi", ".mov", ".mkv", ".wmv"},
			Destination: "Videos",
			Enabled:     true,
		},
		{
			Name:        "Archives",
			Extensions:  []string{".zip", ".rar", ".7z", ".tar", ".gz"},
			Destination: "Archives",
			Enabled:     true,
		},
	}
}
