package usecase

type SignupInput struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Brokerage      string `json:"brokerage"`
	CRM            string `json:"crm"`
	LeadVolume     string `json:"leadVolume"`
	Metro          string `json:"metro"`
	ReferralSource string `json:"referralSource"`
}

type SignupOutput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Metro string `json:"metro"`
}

type ContactInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Intent    string `json:"intent"`
	AIConsent bool   `json:"aiConsent"`
}

type ContactOutput struct {
	OK       bool     `json:"ok"`
	Warnings []string `json:"warnings"`
}
