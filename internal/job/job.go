package job

// Tier is the difficulty class of a contract. It fixes the baseline
// pay range, risk and skill gate at generation time.
type Tier string

const (
	TierEasy   Tier = "Easy"
	TierMedium Tier = "Medium"
	TierHard   Tier = "Hard"
)

// Job is an immutable contract template instance. The pool is generated
// once per session and never mutated; only the daily offer set changes.
type Job struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Tier        Tier    `json:"tier"`
	Pay         int     `json:"pay"`
	EnergyCost  float64 `json:"energy_cost"`
	StressGain  float64 `json:"stress_gain"`
	RepGain     int     `json:"rep_gain"`
	MinSkill    int     `json:"min_skill"`
	FailProb    float64 `json:"fail_prob"`
	TimeHours   float64 `json:"time_hours"`
	Description string  `json:"description"`
}

// FindByID returns the job with the given id from jobs, if present.
func FindByID(jobs []Job, id string) (Job, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}
