package validation

import (
	"strings"

	"gestaobikes/schemas"
)

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// Sanitize removes angle brackets and surrounding whitespace. Quotes,
// ampersands and other markup characters are left alone.
func Sanitize(input string) string {
	return strings.TrimSpace(angleBrackets.Replace(input))
}

func SanitizeContact(c *schemas.Contact) {
	c.Name = Sanitize(c.Name)
	c.FullName = Sanitize(c.FullName)
	c.Phone = Sanitize(c.Phone)
	c.Document = Sanitize(c.Document)
	c.BirthDate = Sanitize(c.BirthDate)
	c.MaritalStatus = schemas.MaritalStatus(Sanitize(string(c.MaritalStatus)))
	c.Profession = Sanitize(c.Profession)
	c.MonthlyIncome = Sanitize(c.MonthlyIncome)
	c.ModelInterest = Sanitize(c.ModelInterest)
	c.Stage = schemas.Stage(Sanitize(string(c.Stage)))
	c.Summary = Sanitize(c.Summary)
	c.PauseAI = schemas.AIPause(Sanitize(string(c.PauseAI)))
}

func SanitizeBike(b *schemas.Bike) {
	b.Model = Sanitize(b.Model)
	b.Price = Sanitize(b.Price)
	b.Range = Sanitize(b.Range)
	b.LoadCapacity = Sanitize(b.LoadCapacity)
	b.Battery = Sanitize(b.Battery)
	b.LicenseRequired = Sanitize(b.LicenseRequired)
	b.Notes = Sanitize(b.Notes)
	b.Photo1 = Sanitize(b.Photo1)
	b.Photo2 = Sanitize(b.Photo2)
	b.Photo3 = Sanitize(b.Photo3)
	b.Video = Sanitize(b.Video)
	b.Status = Sanitize(b.Status)
}

func SanitizeSale(s *schemas.Sale) {
	s.CustomerName = Sanitize(s.CustomerName)
	s.CustomerPhone = Sanitize(s.CustomerPhone)
	s.BikeID = Sanitize(s.BikeID)
	s.BikeModel = Sanitize(s.BikeModel)
	s.DownPayment = Sanitize(s.DownPayment)
	s.FinalAmount = Sanitize(s.FinalAmount)
	s.SaleDate = Sanitize(s.SaleDate)
}
