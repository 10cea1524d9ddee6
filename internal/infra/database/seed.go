package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/joshdavidsjd/MobileRepCRM/internal/entity"
)

// Seed loads the fixed sample records the app ships with: three accounts,
// four contacts, four leads, four opportunities, three activities and the
// user profile. It is a no-op if the store already holds accounts, so a
// process can share a DSN with itself safely.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	accounts := NewAccountRepository(db)
	contacts := NewContactRepository(db)
	leads := NewLeadRepository(db)
	opportunities := NewOpportunityRepository(db)
	activities := NewActivityRepository(db)
	profiles := NewProfileRepository(db)

	for _, a := range sampleAccounts() {
		if err := accounts.Create(ctx, a); err != nil {
			return err
		}
	}
	for _, c := range sampleContacts() {
		if err := contacts.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, l := range sampleLeads() {
		if err := leads.Create(ctx, l); err != nil {
			return err
		}
	}
	for _, o := range sampleOpportunities() {
		if err := opportunities.Create(ctx, o); err != nil {
			return err
		}
	}
	for _, a := range sampleActivities() {
		if err := activities.Create(ctx, a); err != nil {
			return err
		}
	}

	return profiles.Insert(ctx, sampleProfile())
}

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func at(m time.Month, d, hour, min int) time.Time {
	return time.Date(2024, m, d, hour, min, 0, 0, time.UTC)
}

func sampleAccounts() []*entity.Account {
	return []*entity.Account{
		{
			ID: "1", Name: "TechNova Corp", Industry: "Software",
			Website: "https://technova.com", Phone: "+1 (555) 100-2000",
			Address: "123 Innovation Drive", City: "San Francisco", State: "CA", Country: "USA",
			Employees: 500, Revenue: "$50M",
			Description: "Leading software development company specializing in enterprise solutions.",
			CreatedAt:   day(time.January, 10), UpdatedAt: day(time.January, 20),
		},
		{
			ID: "2", Name: "DataFlow Solutions", Industry: "Analytics",
			Website: "https://dataflow.com", Phone: "+1 (555) 200-3000",
			Address: "456 Data Street", City: "Austin", State: "TX", Country: "USA",
			Employees: 250, Revenue: "$25M",
			Description: "Data analytics and business intelligence platform provider.",
			CreatedAt:   day(time.January, 8), UpdatedAt: day(time.January, 18),
		},
		{
			ID: "3", Name: "GreenTech Industries", Industry: "Manufacturing",
			Website: "https://greentech.com", Phone: "+1 (555) 300-4000",
			Address: "789 Green Way", City: "Denver", State: "CO", Country: "USA",
			Employees: 1000, Revenue: "$100M",
			Description: "Sustainable manufacturing solutions for the modern world.",
			CreatedAt:   day(time.January, 5), UpdatedAt: day(time.January, 15),
		},
	}
}

func sampleContacts() []*entity.Contact {
	return []*entity.Contact{
		{
			ID: "1", Name: "Jennifer Wilson", Email: "jennifer.wilson@technova.com",
			Phone: "+1 (555) 123-4567", Title: "VP of Technology", Department: "Engineering",
			AccountID: "1", IsPrimary: true,
			LinkedInURL: "https://linkedin.com/in/jenniferwilson",
			Notes:       "Key decision maker for technology purchases. Very responsive.",
			CreatedAt:   day(time.January, 15), UpdatedAt: day(time.January, 20),
		},
		{
			ID: "2", Name: "Robert Chen", Email: "robert.chen@dataflow.com",
			Phone: "+1 (555) 234-5678", Title: "CTO", Department: "Technology",
			AccountID: "2", IsPrimary: true,
			LinkedInURL: "https://linkedin.com/in/robertchen",
			Notes:       "Technical expert, focuses on integration capabilities.",
			CreatedAt:   day(time.January, 10), UpdatedAt: day(time.January, 18),
		},
		{
			ID: "3", Name: "Maria Rodriguez", Email: "maria.rodriguez@greentech.com",
			Phone: "+1 (555) 345-6789", Title: "Director of Operations", Department: "Operations",
			AccountID: "3", IsPrimary: true,
			Notes:     "Concerned about security and compliance requirements.",
			CreatedAt: day(time.January, 8), UpdatedAt: day(time.January, 16),
		},
		{
			ID: "4", Name: "James Smith", Email: "james.smith@technova.com",
			Phone: "+1 (555) 123-4568", Title: "IT Manager", Department: "IT",
			AccountID: "1", IsPrimary: false,
			Notes:     "Technical implementer, reports to Jennifer.",
			CreatedAt: day(time.January, 16), UpdatedAt: day(time.January, 22),
		},
	}
}

func sampleLeads() []*entity.Lead {
	return []*entity.Lead{
		{
			ID: "1", Name: "Jennifer Wilson", Email: "jennifer.wilson@technova.com",
			Phone: "+1 (555) 123-4567", Company: "TechNova Corp", Industry: "Software",
			Location: "San Francisco, CA", Score: 9.2, Status: entity.LeadStatusHot,
			AIInsight: "High engagement with pricing emails. Ready for proposal.",
			Source:    "Website",
			Notes:     "Very interested in enterprise features. Budget approved for Q1.",
			AccountID: "1",
			CreatedAt: day(time.January, 15), UpdatedAt: day(time.January, 20),
		},
		{
			ID: "2", Name: "Robert Chen", Email: "robert.chen@dataflow.com",
			Phone: "+1 (555) 234-5678", Company: "DataFlow Solutions", Industry: "Analytics",
			Location: "Austin, TX", Score: 7.8, Status: entity.LeadStatusWarm,
			AIInsight: "Interested in integration capabilities. Schedule technical demo.",
			Source:    "LinkedIn",
			Notes:     "Technical decision maker. Needs integration with existing systems.",
			AccountID: "2",
			CreatedAt: day(time.January, 10), UpdatedAt: day(time.January, 18),
		},
		{
			ID: "3", Name: "Maria Rodriguez", Email: "maria.rodriguez@greentech.com",
			Phone: "+1 (555) 345-6789", Company: "GreenTech Industries", Industry: "Manufacturing",
			Location: "Denver, CO", Score: 6.5, Status: entity.LeadStatusWarm,
			AIInsight: "Budget approved. Waiting for security review completion.",
			Source:    "Referral",
			Notes:     "Security compliance is top priority. Long evaluation process.",
			AccountID: "3",
			CreatedAt: day(time.January, 8), UpdatedAt: day(time.January, 16),
		},
		{
			ID: "4", Name: "David Thompson", Email: "david.thompson@cloudfirst.com",
			Phone: "+1 (555) 456-7890", Company: "CloudFirst LLC", Industry: "Cloud Services",
			Location: "Seattle, WA", Score: 5.3, Status: entity.LeadStatusCold,
			AIInsight: "Long sales cycle. Focus on relationship building.",
			Source:    "Cold Outreach",
			Notes:     "Early stage. Need to identify pain points and decision makers.",
			CreatedAt: day(time.January, 5), UpdatedAt: day(time.January, 12),
		},
	}
}

func sampleOpportunities() []*entity.Opportunity {
	return []*entity.Opportunity{
		{
			ID: "1", Title: "Enterprise Software License", Company: "TechNova Corp",
			ContactName: "Jennifer Wilson", Value: 250_000, Stage: entity.StageProposal,
			CloseDate: day(time.March, 15), WinProbability: 85, Urgent: true,
			AIAnalysis:  "Strong buying signals. Decision maker engaged. Recommend aggressive pricing strategy.",
			Description: "Full enterprise license for 500+ users with premium support.",
			LeadID:      "1", AccountID: "1", ContactID: "1",
			CreatedAt: day(time.January, 20), UpdatedAt: day(time.January, 25),
		},
		{
			ID: "2", Title: "Cloud Migration Project", Company: "DataFlow Solutions",
			ContactName: "Robert Chen", Value: 180_000, Stage: entity.StageNegotiation,
			CloseDate: day(time.March, 28), WinProbability: 72, Urgent: false,
			AIAnalysis:  "Price sensitivity detected. Highlight ROI and long-term value proposition.",
			Description: "Complete cloud infrastructure migration with training.",
			LeadID:      "2", AccountID: "2", ContactID: "2",
			CreatedAt: day(time.January, 18), UpdatedAt: day(time.January, 23),
		},
		{
			ID: "3", Title: "Manufacturing Analytics Platform", Company: "GreenTech Industries",
			ContactName: "Maria Rodriguez", Value: 320_000, Stage: entity.StageDiscovery,
			CloseDate: day(time.April, 10), WinProbability: 45, Urgent: false,
			AIAnalysis:  "Early stage. Focus on pain point identification and relationship building.",
			Description: "Custom analytics solution for manufacturing optimization.",
			AccountID:   "3", ContactID: "3",
			CreatedAt: day(time.January, 12), UpdatedAt: day(time.January, 20),
		},
		{
			ID: "4", Title: "Security Audit Service", Company: "SecureBank Ltd",
			ContactName: "Michael Davis", Value: 95_000, Stage: entity.StageQualification,
			CloseDate: day(time.March, 22), WinProbability: 68, Urgent: true,
			AIAnalysis:  "Compliance deadline driving urgency. Fast-track security clearance process.",
			Description: "Comprehensive security audit and compliance certification.",
			CreatedAt:   day(time.January, 15), UpdatedAt: day(time.January, 22),
		},
	}
}

func sampleActivities() []*entity.Activity {
	demo := at(time.January, 25, 14, 0)
	email := at(time.January, 24, 10, 30)
	call := at(time.January, 30, 15, 0)

	return []*entity.Activity{
		{
			ID: "1", Type: entity.ActivityDemo, Title: "Product Demo Completed",
			Description: "Demonstrated key features and answered technical questions",
			ContactName: "Jennifer Wilson", Company: "TechNova Corp",
			Status: entity.ActivityCompleted, Duration: 45, Outcome: entity.OutcomeSuccessful,
			Notes:         "Very interested in enterprise features. Requested pricing proposal.",
			CompletedDate: &demo,
			LeadID:        "1", OpportunityID: "1", AccountID: "1", ContactID: "1",
			CreatedAt: at(time.January, 25, 14, 30),
		},
		{
			ID: "2", Type: entity.ActivityEmail, Title: "Follow-up Email Sent",
			Description: "Sent pricing proposal and next steps",
			ContactName: "Robert Chen", Company: "DataFlow Solutions",
			Status: entity.ActivityCompleted, Duration: 15, Outcome: entity.OutcomeSuccessful,
			Notes:         "Proposal sent. Waiting for technical review.",
			CompletedDate: &email,
			LeadID:        "2", OpportunityID: "2", AccountID: "2", ContactID: "2",
			CreatedAt: at(time.January, 24, 10, 35),
		},
		{
			ID: "3", Type: entity.ActivityCall, Title: "Discovery Call Scheduled",
			Description: "Initial needs assessment and qualification call",
			ContactName: "Maria Rodriguez", Company: "GreenTech Industries",
			Status: entity.ActivityScheduled, Duration: 30,
			Notes:         "Focus on security and compliance requirements.",
			ScheduledDate: &call,
			OpportunityID: "3", AccountID: "3", ContactID: "3",
			CreatedAt: at(time.January, 26, 9, 0),
		},
	}
}

func sampleProfile() *entity.UserProfile {
	return &entity.UserProfile{
		ID:          "1",
		Name:        "Sarah Johnson",
		Email:       "sarah.johnson@techsales.com",
		Company:     "TechSales Corp",
		Title:       "Senior Sales Representative",
		Phone:       "+1 (555) 123-4567",
		Bio:         "Experienced sales professional with 8+ years in enterprise software sales.",
		Location:    "San Francisco, CA",
		Timezone:    "PST",
		QuotaTarget: "$2.5M",
		DashboardWidgets: []string{
			"pipeline-value", "win-rate", "hot-leads",
			"activities", "pipeline-chart", "conversion-chart",
		},
		UpdatedAt: time.Now().UTC(),
	}
}
