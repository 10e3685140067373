package config

type Bot struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Token   string `env:"TOKEN" json:"-"`
	AdminID int64  `env:"ADMIN_ID"`
}
