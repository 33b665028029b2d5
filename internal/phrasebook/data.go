package phrasebook

import "vibr/internal/models"

// builtin returns the shipped category tables in display order.
func builtin() []models.CategoryTable {
	return []models.CategoryTable{
		{
			ID:         "football",
			Label:      "Football",
			ColorToken: "from-emerald-900 to-slate-900",
			Icon:       "⚽",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"cheat", "lie", "other", "betrayal"},
					Me:   "I checked VAR and realized I was offside the whole time.",
					You:  "Bro, check VAR. You've been offside since kickoff.",
				},
				{
					Keys: []string{"fail", "reject", "no", "loss", "defeat"},
					Me:   "I've been relegated to the friend zone.",
					You:  "You are fighting a relegation battle. It's not looking good.",
				},
				{
					Keys: []string{"win", "success", "goal", "score", "triumph"},
					Me:   "90th minute winner! The stadium is going wild.",
					You:  "Top of the table performance. Keep that clean sheet.",
				},
				{
					Keys: []string{"uncertain", "confused", "lost"},
					Me:   "I'm in extra time, wondering which way is the goal.",
					You:  "You're stuck in the middle of the park with no clear direction.",
				},
				{
					Keys: []string{"tired", "exhausted", "drained"},
					Me:   "Full 90 minutes and I'm out of gas.",
					You:  "You're limping to the final whistle.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "I'm a free agent looking for a new club.",
					You:  "The manager has lost the dressing room.",
				},
			},
		},
		{
			ID:         "church",
			Label:      "Church",
			ColorToken: "from-purple-900 to-slate-900",
			Icon:       "⛪",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"broke", "money", "poor", "financial"},
					Me:   "I'm sitting in the back row because my offering envelope is empty.",
					You:  "You're shouting Hallelujah but your envelope is empty.",
				},
				{
					Keys: []string{"bad", "sin", "guilty", "shame"},
					Me:   "I tried to fast but the spirit of gluttony won.",
					You:  "You look like a choir leader but your spirit is from Egypt.",
				},
				{
					Keys: []string{"blessed", "grateful", "thankful", "divine"},
					Me:   "The blessings are flowing and my cup runneth over.",
					You:  "God is working wonders through your life.",
				},
				{
					Keys: []string{"test", "trial", "struggle", "suffering"},
					Me:   "I'm in the wilderness and the manna has stopped.",
					You:  "You're drinking bitter water in the desert.",
				},
				{
					Keys: []string{"hope", "faith", "believe"},
					Me:   "I see the promised land from here.",
					You:  "Your faith is moving mountains.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "I need deliverance from this situation.",
					You:  "Stop sowing seeds on rocky ground.",
				},
			},
		},
		{
			ID:         "street",
			Label:      "Street",
			ColorToken: "from-orange-900 to-slate-900",
			Icon:       "🇬🇭",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"fake", "lie", "phony", "scam", "fraud"},
					Me:   "I bought an iPhone but it's full of fufu.",
					You:  "You are chasing a Benz with a Corolla engine.",
				},
				{
					Keys: []string{"stress", "confused", "chaos", "trouble"},
					Me:   "The Trotro mate has run away with my change.",
					You:  "You are driving against traffic on the motorway.",
				},
				{
					Keys: []string{"wealthy", "rich", "successful", "winning"},
					Me:   "I'm living the big life now. Even the Achimota boys respect me.",
					You:  "Your money is taller than Burj Khalifa.",
				},
				{
					Keys: []string{"scared", "afraid", "nervous", "worried"},
					Me:   "I'm hiding from the landlord like I'm in a Nollywood movie.",
					You:  "You're running from shadows in broad daylight.",
				},
				{
					Keys: []string{"angry", "rage", "furious", "upset"},
					Me:   "I'm about to do something that will make the news.",
					You:  "You're ready to bring down the whole building.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "The foundation was weak. Too much sand, not enough cement.",
					You:  "Don't bring a knife to a gunfight.",
				},
			},
		},
		{
			ID:         "corporate",
			Label:      "Corporate",
			ColorToken: "from-blue-900 to-slate-900",
			Icon:       "💼",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"tired", "quit", "over", "done"},
					Me:   "I'm quiet quitting. Do not disturb.",
					You:  "You are operating at 10% bandwidth.",
				},
				{
					Keys: []string{"angry", "furious", "mad"},
					Me:   "Per my last email, I am done with this nonsense.",
					You:  "Let's circle back to why you think you're the CEO.",
				},
				{
					Keys: []string{"promoted", "success", "achievement", "winning"},
					Me:   "I've been fast-tracked to the C-suite.",
					You:  "You're printing your business card in gold now.",
				},
				{
					Keys: []string{"meeting", "presentation", "pitch", "proposal"},
					Me:   "I'm synergizing with stakeholders to explore bandwidth.",
					You:  "You're drowning in buzzwords and deck slides.",
				},
				{
					Keys: []string{"lazy", "procrastinate", "slow"},
					Me:   "I'm in my villainless era at the office.",
					You:  "You're moving slower than a dial-up connection.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "I need to audit my life choices.",
					You:  "You are an unpaid intern in her life.",
				},
			},
		},
		{
			ID:         "creative",
			Label:      "Creative",
			ColorToken: "from-pink-900 to-slate-900",
			Icon:       "🎨",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"blocked", "stuck", "uninspired"},
					Me:   "My muse left without paying the bills.",
					You:  "Your creative tank is on E.",
				},
				{
					Keys: []string{"inspired", "flow", "genius"},
					Me:   "I'm in the zone and the vibes are immaculate.",
					You:  "You're channeling a higher power right now.",
				},
				{
					Keys: []string{"rejected", "critique", "criticism"},
					Me:   "My masterpiece was called 'mid' and I'm not recovering.",
					You:  "They put your work through the shredder.",
				},
				{
					Keys: []string{"viral", "famous", "trending"},
					Me:   "The algorithm blessed me and I'm eating.",
					You:  "You're the talk of the town.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "I'm waiting for my big break.",
					You:  "Your moment is coming.",
				},
			},
		},
		{
			ID:         "romance",
			Label:      "Romance",
			ColorToken: "from-red-900 to-slate-900",
			Icon:       "💕",
			Data: []models.PhraseEntry{
				{
					Keys: []string{"heartbreak", "rejected", "single"},
					Me:   "I'm nursing a broken heart with bad music.",
					You:  "You're one bad decision away from a tattoo.",
				},
				{
					Keys: []string{"love", "crush", "attraction"},
					Me:   "I'm floating and there's no gravity here.",
					You:  "You've got that glow that won't fade.",
				},
				{
					Keys: []string{"betrayal", "cheated", "unfaithful"},
					Me:   "I thought we were endgame but I was just sideline.",
					You:  "They played you like a cheap fiddle.",
				},
				{
					Keys: []string{"happy", "blessed", "together"},
					Me:   "We're writing a fairytale and it's real.",
					You:  "You two are the relationship template everyone copies.",
				},
				{
					Keys: []string{models.GenericKey},
					Me:   "Love is a beautiful mystery.",
					You:  "Your soulmate is out there searching.",
				},
			},
		},
		{ID: "family", Label: "Family", ColorToken: "bg-gradient-to-br from-orange-700 to-amber-900", Icon: "👨‍👩‍👧‍👦"},
		{ID: "career", Label: "Career", ColorToken: "bg-gradient-to-br from-purple-900 to-indigo-900", Icon: "📈"},
		{ID: "friends", Label: "Friends", ColorToken: "bg-gradient-to-br from-pink-700 to-rose-900", Icon: "🤝"},
		{ID: "lifestyle", Label: "Lifestyle", ColorToken: "bg-gradient-to-br from-teal-700 to-cyan-900", Icon: "🧘‍♀️"},
		{ID: "money", Label: "Money", ColorToken: "bg-gradient-to-br from-green-700 to-emerald-900", Icon: "💰"},
		{ID: "health", Label: "Health", ColorToken: "bg-gradient-to-br from-sky-700 to-blue-900", Icon: "🩺"},
		{ID: "education", Label: "Education", ColorToken: "bg-gradient-to-br from-yellow-700 to-orange-900", Icon: "🎓"},
		{ID: "travel", Label: "Travel", ColorToken: "bg-gradient-to-br from-indigo-700 to-violet-900", Icon: "✈️"},
	}
}
