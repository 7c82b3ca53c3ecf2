package event

// PositiveEvents and NegativeEvents are the fixed draw pools. A day
// rollover draws one event with a 50/50 polarity split.
var PositiveEvents = []Event{
	{ID: "p1", Title: "Generous Tip", Description: "Client loved the docs! +500 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 500}, Log: "Received 500 ฿ bonus!"},
	{ID: "p2", Title: "Open Source Fame", Description: "Your PR was merged into React! +20 Rep", Polarity: Positive, Effect: Effect{Kind: EffectReputation, Amount: 20}, Log: "Gained 20 Reputation!"},
	{ID: "p3", Title: "Coffee Gift", Description: "A stranger paid for your latte. -10 Stress", Polarity: Positive, Effect: Effect{Kind: EffectStress, Amount: -10}, Log: "Feeling refreshed! -10 Stress."},
	{ID: "p4", Title: "Found Crypto", Description: "Found a private key in an old folder! +1200 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 1200}, Log: "Cashed out 1200 ฿!"},
	{ID: "p5", Title: "Bug Bounty", Description: "Accidentally found a security flaw. +2000 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 2000}, Log: "Bounty hunter! +2000 ฿."},
	{ID: "p6", Title: "Deep Sleep", Description: "Finally got 8 hours. +40 Energy", Polarity: Positive, Effect: Effect{Kind: EffectEnergy, Amount: 40}, Log: "Woke up energized! +40 Energy."},
	{ID: "p7", Title: "Streamer Shoutout", Description: "A big dev streamer liked your UI. +15 Rep", Polarity: Positive, Effect: Effect{Kind: EffectReputation, Amount: 15}, Log: "+15 Reputation."},
	{ID: "p8", Title: "Stack Overflow King", Description: "Your answer reached 1M people. +10 Rep", Polarity: Positive, Effect: Effect{Kind: EffectReputation, Amount: 10}, Log: "+10 Reputation."},
	{ID: "p9", Title: "Tax Refund", Description: "Government overcharged you last year. +800 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 800}, Log: "+800 ฿ refund."},
	{ID: "p10", Title: "Productivity Hack", Description: "New Pomodoro technique works. -15 Stress", Polarity: Positive, Effect: Effect{Kind: EffectStress, Amount: -15}, Log: "-15 Stress."},
	{ID: "p11", Title: "Referral Bonus", Description: "Referred a friend to a gig. +1000 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 1000}, Log: "+1000 ฿ referral."},
	{ID: "p12", Title: "Free Coworking Day", Description: "Promo at the local hub. +100 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 100}, Log: "Saved 100 ฿ on fees."},
	{ID: "p13", Title: "Code Refactor Success", Description: "The project is now faster. -10 Energy cost next task.", Polarity: Positive, Effect: Effect{Kind: EffectEnergy, Amount: 10}, Log: "+10 Energy bonus."},
	{ID: "p14", Title: "Twitter Thread Viral", Description: "Shared \"10 CSS tips\". +30 Rep", Polarity: Positive, Effect: Effect{Kind: EffectReputation, Amount: 30}, Log: "Social media king! +30 Rep."},
	{ID: "p15", Title: "Keyboard Cleaning", Description: "Tofu crumbs removed. Satisfying. -5 Stress", Polarity: Positive, Effect: Effect{Kind: EffectStress, Amount: -5}, Log: "-5 Stress."},
	{ID: "p16", Title: "Happy Birthday", Description: "Grandma sent a card with cash. +200 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 200}, Log: "Thanks Grandma! +200 ฿."},
	{ID: "p17", Title: "Yoga Session", Description: "Stretched those hamstrings. +15 Energy", Polarity: Positive, Effect: Effect{Kind: EffectEnergy, Amount: 15}, Log: "+15 Energy."},
	{ID: "p18", Title: "Algorithm Insight", Description: "Solved it in your sleep! +1 Skill", Polarity: Positive, Effect: Effect{Kind: EffectSkill, Amount: 1}, Log: "+1 Skill Level!"},
	{ID: "p19", Title: "Cheap Street Food", Description: "Delicious and budget-friendly. +150 ฿", Polarity: Positive, Effect: Effect{Kind: EffectMoney, Amount: 150}, Log: "Saved 150 ฿ on dinner."},
	{ID: "p20", Title: "Zen State", Description: "Everything is flowing. -20 Stress", Polarity: Positive, Effect: Effect{Kind: EffectStress, Amount: -20}, Log: "Reached Zen. -20 Stress."},
}

var NegativeEvents = []Event{
	{ID: "n1", Title: "Laptop Coffee Spill", Description: "Urgent repair needed! -1000 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -1000}, Log: "Lost 1000 ฿ on repairs."},
	{ID: "n2", Title: "Back Pain Flare", Description: "Sitting too long... -20 Energy", Polarity: Negative, Effect: Effect{Kind: EffectEnergyEquipGated, Amount: -20, ReducedAmount: -5, MinEquipLevel: 3}, Log: "Ouch! -20 Energy.", ReducedLog: "Ouch! -5 Energy."},
	{ID: "n3", Title: "Scope Creep", Description: "Client: \"Just one tiny thing...\" +15 Stress", Polarity: Negative, Effect: Effect{Kind: EffectStress, Amount: 15}, Log: "+15 Stress from scope creep."},
	{ID: "n4", Title: "Wi-Fi Outage", Description: "Missed a deadline meeting. -10 Rep", Polarity: Negative, Effect: Effect{Kind: EffectReputation, Amount: -10}, Log: "Disconnected. -10 Rep."},
	{ID: "n5", Title: "Food Poisoning", Description: "Dodgy tacos. -40 Energy", Polarity: Negative, Effect: Effect{Kind: EffectEnergy, Amount: -40}, Log: "Sick! -40 Energy."},
	{ID: "n6", Title: "Gym Subscription Auto-renew", Description: "Haven't gone in months. -600 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -600}, Log: "Gym tax. -600 ฿."},
	{ID: "n7", Title: "Cloud Bill Shock", Description: "Left a GPU instance running. -1500 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -1500}, Log: "Cloud costs! -1500 ฿."},
	{ID: "n8", Title: "Imposter Syndrome", Description: "Why am I doing this? +10 Stress", Polarity: Negative, Effect: Effect{Kind: EffectStress, Amount: 10}, Log: "+10 Stress."},
	{ID: "n9", Title: "Ghosted by Client", Description: "Wait, where is my payment? -5 Rep", Polarity: Negative, Effect: Effect{Kind: EffectReputation, Amount: -5}, Log: "Client ghosted. -5 Rep."},
	{ID: "n10", Title: "Stolen Charger", Description: "Left it at the cafe. -400 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -400}, Log: "Bought new charger. -400 ฿."},
	{ID: "n11", Title: "Carpal Tunnel", Description: "Wrist is burning. -15 Energy", Polarity: Negative, Effect: Effect{Kind: EffectEnergy, Amount: -15}, Log: "Pain! -15 Energy."},
	{ID: "n12", Title: "Netflix Binge", Description: "Accidentally watched 10 hours. -30 Energy", Polarity: Negative, Effect: Effect{Kind: EffectEnergy, Amount: -30}, Log: "Binged. -30 Energy."},
	{ID: "n13", Title: "Merge Conflict", Description: "Whole team pushed at once. +20 Stress", Polarity: Negative, Effect: Effect{Kind: EffectStress, Amount: 20}, Log: "Conflict! +20 Stress."},
	{ID: "n14", Title: "Bad Review", Description: "Someone disliked your code style. -15 Rep", Polarity: Negative, Effect: Effect{Kind: EffectReputation, Amount: -15}, Log: "-15 Rep."},
	{ID: "n15", Title: "Power Surge", Description: "Monitor fried. -2500 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -2500}, Log: "New monitor. -2500 ฿."},
	{ID: "n16", Title: "Family Drama", Description: "Loud phone call for 3 hours. +15 Stress", Polarity: Negative, Effect: Effect{Kind: EffectStress, Amount: 15}, Log: "Drama! +15 Stress."},
	{ID: "n17", Title: "DDoS Attack", Description: "Your portfolio site is down. -10 Rep", Polarity: Negative, Effect: Effect{Kind: EffectReputation, Amount: -10}, Log: "DDoS! -10 Rep."},
	{ID: "n18", Title: "Broken Chair", Description: "Back support is gone. +10 Stress", Polarity: Negative, Effect: Effect{Kind: EffectStress, Amount: 10}, Log: "Uncomfortable. +10 Stress."},
	{ID: "n19", Title: "Vandalism", Description: "Someone keyed your sticker-covered laptop. -300 ฿", Polarity: Negative, Effect: Effect{Kind: EffectMoney, Amount: -300}, Log: "-300 ฿."},
	{ID: "n20", Title: "Caffeine Withdrawal", Description: "Headache is real. -25 Energy", Polarity: Negative, Effect: Effect{Kind: EffectEnergy, Amount: -25}, Log: "No coffee! -25 Energy."},
}
