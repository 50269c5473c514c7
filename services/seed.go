package services

import (
	"log"

	"court_filing_app_go/models"

	"gorm.io/gorm"
)

// SeedFilingTemplates loads the template catalog. Skips seeding when any
// templates already exist.
func SeedFilingTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FilingTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Filing templates already exist, skipping seed")
		return nil
	}

	templates := []models.FilingTemplate{
		{
			Name:         "Civil Complaint",
			DocumentType: "Complaint",
			CourtClass:   models.CourtClassFederal,
			Description:  "Standard civil complaint with caption, jurisdictional statement, counts and prayer for relief",
			IsActive:     true,
		},
		{
			Name:         "Answer to Complaint",
			DocumentType: "Answer",
			CourtClass:   models.CourtClassFederal,
			Description:  "Responsive pleading with admissions, denials and affirmative defenses",
			IsActive:     true,
		},
		{
			Name:         "Motion for Summary Judgment",
			DocumentType: "Motion for Summary Judgment",
			CourtClass:   models.CourtClassFederal,
			Description:  "Rule 56 motion with statement of undisputed material facts",
			IsActive:     true,
		},
		{
			Name:         "Petition for Divorce (1A)",
			DocumentType: "Petition for Divorce",
			CourtClass:   models.CourtClassProbateFamily,
			Description:  "Joint petition for divorce under M.G.L. c. 208 s. 1A",
			IsActive:     true,
		},
		{
			Name:         "Probate Petition",
			DocumentType: "Probate Petition",
			CourtClass:   models.CourtClassProbateFamily,
			Description:  "Petition for formal probate of a will and appointment of a personal representative",
			IsActive:     true,
		},
		{
			Name:         "Temporary Restraining Order",
			DocumentType: "TRO",
			CourtClass:   models.CourtClassFederal,
			Description:  "Rule 65(b) motion with affidavit of immediate and irreparable injury and notice certification",
			IsEmergency:  true,
			IsActive:     true,
		},
		{
			Name:         "Motion for Preliminary Injunction",
			DocumentType: "Preliminary Injunction",
			CourtClass:   models.CourtClassFederal,
			Description:  "Rule 65(a) motion addressing the four Winter factors",
			IsEmergency:  true,
			IsActive:     true,
		},
		{
			Name:         "Emergency Motion",
			DocumentType: "Emergency Motion",
			CourtClass:   models.CourtClassSuperior,
			Description:  "Emergency motion for short-order-of-notice hearing",
			IsEmergency:  true,
			IsActive:     true,
		},
	}

	for _, tmpl := range templates {
		t := tmpl
		if err := db.Create(&t).Error; err != nil {
			return err
		}
	}

	log.Printf("[SEED] Created %d filing templates", len(templates))
	return nil
}

// SeedLegalAidOrganizations loads the legal aid directory. Skips seeding when
// any organizations already exist.
func SeedLegalAidOrganizations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.LegalAidOrganization{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Legal aid organizations already exist, skipping seed")
		return nil
	}

	orgs := []models.LegalAidOrganization{
		{
			Name:               "Greater Boston Legal Services",
			PracticeAreas:      "housing, family, benefits, immigration",
			Location:           "Boston",
			Availability:       "waitlist",
			HandlesEmergencies: true,
			Phone:              "617-371-1234",
			Website:            "https://www.gbls.org",
		},
		{
			Name:               "Community Legal Aid",
			PracticeAreas:      "housing, family, elder, benefits",
			Location:           "Worcester",
			Availability:       "immediate",
			HandlesEmergencies: true,
			Phone:              "855-252-5342",
			Website:            "https://www.communitylegal.org",
		},
		{
			Name:               "Northeast Legal Aid",
			PracticeAreas:      "housing, consumer, employment",
			Location:           "Lawrence",
			Availability:       "waitlist",
			HandlesEmergencies: false,
			Phone:              "978-458-1465",
			Website:            "https://www.northeastlegalaid.org",
		},
		{
			Name:               "South Coastal Counties Legal Services",
			PracticeAreas:      "housing, family, benefits",
			Location:           "Fall River",
			Availability:       "immediate",
			HandlesEmergencies: false,
			Phone:              "800-244-9023",
			Website:            "https://www.sccls.org",
		},
		{
			Name:               "Veterans Legal Services",
			PracticeAreas:      "benefits, housing, family",
			Location:           "Boston",
			Availability:       "waitlist",
			HandlesEmergencies: false,
			Phone:              "857-317-4474",
			Website:            "https://www.veteranslegalservices.org",
		},
		{
			Name:               "Massachusetts Law Reform Institute",
			PracticeAreas:      "benefits, housing, immigration",
			Location:           "Boston",
			Availability:       "referral",
			HandlesEmergencies: false,
			Phone:              "617-357-0700",
			Website:            "https://www.mlri.org",
		},
	}

	for _, org := range orgs {
		o := org
		if err := db.Create(&o).Error; err != nil {
			return err
		}
	}

	log.Printf("[SEED] Created %d legal aid organizations", len(orgs))
	return nil
}

// GetFilingTemplates returns active templates, optionally only emergency ones
func GetFilingTemplates(db *gorm.DB, emergencyOnly bool) ([]models.FilingTemplate, error) {
	query := db.Where("is_active = ?", true)
	if emergencyOnly {
		query = query.Where("is_emergency = ?", true)
	}

	var templates []models.FilingTemplate
	if err := query.Order("name ASC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}
