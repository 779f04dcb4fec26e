package config

const (
	SourceDemo = "demo"
	SourceFile = "file"
)

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func DefaultConfig() Config {
	return Config{
		Source: SourceConfig{
			Kind:            SourceDemo,
			RefreshInterval: 10,
			Timeout:         5,
		},
		UI: UIConfig{
			TileWidth:       26,
			TileMargin:      intPtr(1),
			RelabelInterval: 20,
			Mouse:           boolPtr(true),
		},
	}
}
