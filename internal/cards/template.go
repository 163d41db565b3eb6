package cards

import (
	"encoding/csv"
	"io"
)

var exampleRows = [][]string{
	{"John Smith", "Senior Designer", "Creative Agency", "john@agency.com", "(555) 123-4567", "www.agency.com", "123 Main St, City, State", "executive_premium", "executive_navy", "true"},
	{"Sarah Johnson", "Marketing Director", "Tech Company", "sarah@tech.com", "(555) 234-5678", "www.tech.com", "456 Oak Ave, City, State", "modern_gradient", "tech_cyan", "false"},
	{"Mike Johnson", "Financial Advisor", "Investment Firm", "mike@finance.com", "(555) 555-5555", "www.finance.com", "789 Pine St, City, State", "minimalist_pro", "finance_green", "true"},
}

// TemplateFilename is the suggested download name for WriteTemplate output.
const TemplateFilename = "business_cards_template.csv"

// WriteTemplate writes the batch CSV header followed by example rows.
func WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	if err := cw.WriteAll(exampleRows); err != nil {
		return err
	}
	return cw.Error()
}
