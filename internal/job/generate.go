package job

import "fmt"

// Rand is the draw source used when randomizing pay within a tier range.
type Rand interface {
	Intn(n int) int
}

// PerTier is the number of job instances generated per tier.
const PerTier = 30

type template struct {
	title string
	desc  string
}

var easyTemplates = []template{
	{"Fix Navbar CSS", "The logo is overlapping the menu."},
	{"Clean Console Logs", "Production is leaking dev secrets."},
	{"Update README", "The setup instructions are 2 years old."},
	{"Icon Replacement", "Swap all PNGs for SVGs."},
	{"Simple Bugfix", "Button does nothing when clicked."},
	{"Favicon Polish", "Client wants it to \"pop\" more."},
	{"Color Palette Edit", "Marketing changed their mind again."},
	{"Form Validation", "Users are entering emojis as emails."},
	{"Markdown Formatting", "Fix the blog post layout."},
	{"Asset Compression", "The landing page is 50MB."},
}

var mediumTemplates = []template{
	{"React Dashboard", "Build a complex data visualization view."},
	{"Auth Integration", "Connect Firebase/Supabase for login."},
	{"Stripe Checkout", "Implement a basic payment flow."},
	{"API Endpoint", "Create a CRUD service for a mobile app."},
	{"State Refactor", "Move prop-drilling hell to Redux/Zustand."},
	{"Grid Overhaul", "Make the whole site truly responsive."},
	{"Unit Test Suite", "Target 80% coverage on core logic."},
	{"SQL Migration", "Move data from Postgres to MySQL."},
	{"Performance Audit", "Improve Lighthouse score from 40 to 90."},
	{"Component Library", "Standardize the UI elements."},
}

var hardTemplates = []template{
	{"AI Integration Engine", "LLM-powered automation for enterprise."},
	{"Blockchain Contract", "Deploy a secure NFT minting contract."},
	{"Legacy Migration", "Rewriting a COBOL system in Go."},
	{"Load Balancing", "Scaling to 1 million concurrent users."},
	{"Security Patching", "Fixing a critical zero-day exploit."},
	{"WebAssembly Core", "Porting a C++ engine to the browser."},
	{"Distributed DB", "Multi-region data synchronization."},
	{"Algorithm Dev", "Optimizing a pathfinding system."},
	{"SaaS Architecture", "Designing a multi-tenant backend."},
	{"Real-time Video", "Implementing WebRTC with low latency."},
}

// Generate builds the permanent contract pool: PerTier instances per
// tier, cycling through the fixed title/description templates with
// tier baselines, pay randomized within the tier range. Called once
// per session.
func Generate(r Rand) []Job {
	jobs := make([]Job, 0, 3*PerTier)

	for i := 0; i < PerTier; i++ {
		base := easyTemplates[i%len(easyTemplates)]
		jobs = append(jobs, Job{
			ID:          fmt.Sprintf("e-%d", i),
			Title:       fmt.Sprintf("%s (v%d)", base.title, i+1),
			Tier:        TierEasy,
			Pay:         150 + r.Intn(150),
			EnergyCost:  12,
			StressGain:  4,
			RepGain:     2,
			MinSkill:    1,
			FailProb:    0.10,
			TimeHours:   2,
			Description: base.desc,
		})
	}

	for i := 0; i < PerTier; i++ {
		base := mediumTemplates[i%len(mediumTemplates)]
		jobs = append(jobs, Job{
			ID:          fmt.Sprintf("m-%d", i),
			Title:       fmt.Sprintf("%s (v%d)", base.title, i+1),
			Tier:        TierMedium,
			Pay:         900 + r.Intn(1100),
			EnergyCost:  40,
			StressGain:  18,
			RepGain:     8,
			MinSkill:    3,
			FailProb:    0.25,
			TimeHours:   6,
			Description: base.desc,
		})
	}

	for i := 0; i < PerTier; i++ {
		base := hardTemplates[i%len(hardTemplates)]
		jobs = append(jobs, Job{
			ID:          fmt.Sprintf("h-%d", i),
			Title:       fmt.Sprintf("DEADLINE: %s", base.title),
			Tier:        TierHard,
			Pay:         6000 + r.Intn(9000),
			EnergyCost:  55,
			StressGain:  45,
			RepGain:     25,
			MinSkill:    6,
			FailProb:    0.45,
			TimeHours:   12,
			Description: base.desc,
		})
	}

	return jobs
}
