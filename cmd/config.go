package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	OperatorEmail string
	OperatorPhone string

	BusinessName  string
	BusinessPhone string
	WebsiteURL    string

	StrictStatusTransitions string
	NotifyTimeoutSeconds    string
}
