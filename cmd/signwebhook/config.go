package main

type config struct {
	BaseURL     string `mapstructure:"base_url"`
	ClientID    string `mapstructure:"client_id"`
	AgreementID string `mapstructure:"agreement_id"`
	Event       string `mapstructure:"event"`
	Document    string `mapstructure:"document"`
	Trimmed     bool   `mapstructure:"trimmed"`
}
