package invoicing

import (
	"os"
	"strconv"
)

// Config holds environment-driven settings for the server, storage, email,
// and the issuer identity printed on every invoice.
type Config struct {
	Addr        string
	DatabaseURL string
	CORSOrigin  string

	SendGridAPIKey string
	SenderEmail    string

	CompanyName         string
	CompanyAddress      string
	CompanyCityStateZip string
	FooterText          string

	TaxRate float64
}

func LoadConfig() Config {
	return Config{
		Addr:        getenv("ADDR", ":3001"),
		DatabaseURL: getenv("DATABASE_URL", ""),
		CORSOrigin:  getenv("CORS_ORIGIN", "http://localhost:3000"),

		SendGridAPIKey: getenv("SENDGRID_API_KEY", ""),
		SenderEmail:    getenv("SENDER_EMAIL", ""),

		CompanyName:         getenv("COMPANY_NAME", "Your Company Name"),
		CompanyAddress:      getenv("COMPANY_ADDRESS", "123 Main Street"),
		CompanyCityStateZip: getenv("COMPANY_CITY_STATE_ZIP", "City, State, 12345"),
		FooterText:          getenv("INVOICE_FOOTER", "Payment is due within 15 days. Thank you for your business."),

		TaxRate: getFloat("TAX_RATE", 0.10),
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
