package challenge

var weeks = []Week{
	{
		ID:          1,
		Title:       "Foundation Week",
		Theme:       "Setting Intentions",
		Description: "Lay the groundwork for your transformation journey by clarifying your vision and setting powerful intentions.",
		FocusAreas: []FocusArea{
			{
				ID:          "vision",
				Title:       "Vision Clarity",
				Description: "Define your ultimate vision and what success means to you",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Write Your Vision Statement",
						Description: "Spend 20 minutes writing a detailed vision of where you want to be in 12 weeks",
						ActionItems: []string{
							"Find a quiet space",
							"Write without editing",
							"Be specific and vivid",
							"Include all life areas",
						},
					},
					{
						Day:         2,
						Title:       "Identify Core Values",
						Description: "List your top 5 values that will guide your decisions",
						ActionItems: []string{
							"Reflect on what matters most",
							"Write down 10 values",
							"Narrow to top 5",
							"Define what each means to you",
						},
					},
					{
						Day:         3,
						Title:       "Set SMART Goals",
						Description: "Create 3-5 specific, measurable goals for the next 12 weeks",
						ActionItems: []string{
							"Make goals specific",
							"Ensure they are measurable",
							"Set realistic timelines",
							"Write them down",
						},
					},
					{
						Day:         4,
						Title:       "Create Your Why Statement",
						Description: "Write a powerful \"why\" statement that will keep you motivated",
						ActionItems: []string{
							"Ask \"why\" 5 times",
							"Connect to emotions",
							"Make it personal",
							"Keep it visible",
						},
					},
					{
						Day:         5,
						Title:       "Design Your Environment",
						Description: "Set up your physical and digital spaces to support your goals",
						ActionItems: []string{
							"Declutter your workspace",
							"Remove distractions",
							"Add visual reminders",
							"Create a dedicated space",
						},
					},
					{
						Day:         6,
						Title:       "Establish Baseline Metrics",
						Description: "Measure where you are now to track progress",
						ActionItems: []string{
							"Identify key metrics",
							"Take initial measurements",
							"Record baseline data",
							"Set up tracking system",
						},
					},
					{
						Day:         7,
						Title:       "Commit to the Journey",
						Description: "Make a formal commitment to yourself and the process",
						ActionItems: []string{
							"Write a commitment letter",
							"Share with accountability partner",
							"Set up daily check-ins",
							"Celebrate starting",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-1", Text: "Every journey begins with a single step. Today, I take mine.", Type: "weekly"},
			{ID: "daily-1-1", Text: "I am clear about my vision and committed to making it real.", Type: "daily", Day: 1},
			{ID: "daily-1-2", Text: "My values guide every decision I make today.", Type: "daily", Day: 2},
			{ID: "daily-1-3", Text: "I set goals that stretch me and excite me.", Type: "daily", Day: 3},
			{ID: "daily-1-4", Text: "My why is my anchor, keeping me grounded and focused.", Type: "daily", Day: 4},
			{ID: "daily-1-5", Text: "I create environments that support my highest self.", Type: "daily", Day: 5},
			{ID: "daily-1-6", Text: "I measure what matters and track my progress with intention.", Type: "daily", Day: 6},
			{ID: "daily-1-7", Text: "I commit fully to this journey and trust the process.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-1-1", Text: "What does success look like to me in 12 weeks? How will I feel?", Type: "daily", Day: 1},
			{ID: "prompt-1-2", Text: "Which values am I living today? Which ones need more attention?", Type: "daily", Day: 2},
			{ID: "prompt-1-3", Text: "What progress did I make toward my goals today?", Type: "daily", Day: 3},
			{ID: "prompt-1-4", Text: "When I think about my why, what emotions arise?", Type: "daily", Day: 4},
			{ID: "prompt-1-5", Text: "How did my environment support or hinder me today?", Type: "daily", Day: 5},
			{ID: "prompt-1-6", Text: "What did I learn from tracking my metrics today?", Type: "daily", Day: 6},
			{ID: "prompt-1-7", Text: "How do I feel about my commitment? What will keep me going?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-1", Text: "Reflect on Week 1: What intentions did I set? How committed am I to this journey? What will I carry forward?", Type: "weekly"},
		},
	},
	{
		ID:          2,
		Title:       "Self-Awareness Week",
		Theme:       "Understanding Yourself",
		Description: "Develop deep understanding of yourself, your patterns, and your current state.",
		FocusAreas: []FocusArea{
			{
				ID:          "self-awareness",
				Title:       "Self-Awareness",
				Description: "Develop deep understanding of yourself, your patterns, and your current state",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Assess Current State",
						Description: "Honestly evaluate where you are in all life areas",
						ActionItems: []string{
							"Rate each life area 1-10",
							"Note what feels off balance",
							"Write without judgment",
							"Keep the assessment for later",
						},
					},
					{
						Day:         2,
						Title:       "Identify Patterns",
						Description: "Recognize patterns that serve you and those that don't",
						ActionItems: []string{
							"List 3 recurring behaviors",
							"Mark each as helpful or harmful",
							"Find the trigger behind each",
							"Pick one pattern to change",
						},
					},
					{
						Day:         3,
						Title:       "Understand Your Triggers",
						Description: "Identify what triggers negative reactions or behaviors",
						ActionItems: []string{
							"Recall 3 recent frustrations",
							"Name the trigger in each",
							"Notice your body's response",
							"Plan a pause strategy",
						},
					},
					{
						Day:         4,
						Title:       "Recognize Your Strengths",
						Description: "Acknowledge and document your natural strengths",
						ActionItems: []string{
							"List 5 things you do well",
							"Ask a friend what you excel at",
							"Find where strengths show up daily",
							"Plan to use one strength tomorrow",
						},
					},
					{
						Day:         5,
						Title:       "Acknowledge Your Weaknesses",
						Description: "Honestly identify areas where you need growth",
						ActionItems: []string{
							"List 3 growth areas",
							"Write them without shame",
							"Decide which matters most",
							"Pick one small improvement step",
						},
					},
					{
						Day:         6,
						Title:       "Reflect on Past Successes",
						Description: "Learn from times when you achieved your goals",
						ActionItems: []string{
							"Recall 3 past wins",
							"Identify what made them work",
							"Note the habits behind them",
							"Apply one lesson this week",
						},
					},
					{
						Day:         7,
						Title:       "Create Self-Awareness Practice",
						Description: "Establish a daily practice for ongoing self-awareness",
						ActionItems: []string{
							"Choose a daily check-in time",
							"Pick 3 reflection questions",
							"Set a reminder",
							"Commit for 30 days",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-2", Text: "The better I know myself, the better I can grow myself.", Type: "weekly"},
			{ID: "daily-2-1", Text: "I see myself clearly and honestly, without judgment.", Type: "daily", Day: 1},
			{ID: "daily-2-2", Text: "I notice my patterns and choose which ones to keep.", Type: "daily", Day: 2},
			{ID: "daily-2-3", Text: "I pause before I react, and respond with intention.", Type: "daily", Day: 3},
			{ID: "daily-2-4", Text: "My strengths are real and I use them every day.", Type: "daily", Day: 4},
			{ID: "daily-2-5", Text: "My weaknesses are starting points, not verdicts.", Type: "daily", Day: 5},
			{ID: "daily-2-6", Text: "I have succeeded before and I will succeed again.", Type: "daily", Day: 6},
			{ID: "daily-2-7", Text: "Self-awareness is a practice I return to daily.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-2-1", Text: "Which life area surprised me most in today's assessment?", Type: "daily", Day: 1},
			{ID: "prompt-2-2", Text: "What pattern did I notice in myself today?", Type: "daily", Day: 2},
			{ID: "prompt-2-3", Text: "What triggered me today, and how did I respond?", Type: "daily", Day: 3},
			{ID: "prompt-2-4", Text: "Where did one of my strengths show up today?", Type: "daily", Day: 4},
			{ID: "prompt-2-5", Text: "How does it feel to name a weakness without shame?", Type: "daily", Day: 5},
			{ID: "prompt-2-6", Text: "What did a past success teach me that applies now?", Type: "daily", Day: 6},
			{ID: "prompt-2-7", Text: "What will my daily self-awareness practice look like?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-2", Text: "Reflect on Week 2: What did I learn about myself this week that I did not know before?", Type: "weekly"},
		},
	},
	{
		ID:          3,
		Title:       "Accountability Week",
		Theme:       "Building Systems",
		Description: "Build systems and relationships that keep you committed and on track.",
		FocusAreas: []FocusArea{
			{
				ID:          "accountability",
				Title:       "Accountability Systems",
				Description: "Build systems and relationships that keep you committed and on track",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Find Accountability Partner",
						Description: "Choose someone who will hold you to your commitments",
						ActionItems: []string{
							"List 3 candidates",
							"Reach out to your first choice",
							"Agree on check-in frequency",
							"Share your 12-week goals",
						},
					},
					{
						Day:         2,
						Title:       "Set Up Tracking System",
						Description: "Create a simple system to track your daily progress",
						ActionItems: []string{
							"Pick a tracking tool",
							"Define what gets tracked",
							"Keep it under 2 minutes a day",
							"Log today as day one",
						},
					},
					{
						Day:         3,
						Title:       "Create Public Commitment",
						Description: "Make your goals known to raise the stakes",
						ActionItems: []string{
							"Choose your audience",
							"State your goal plainly",
							"Include your deadline",
							"Invite people to ask about it",
						},
					},
					{
						Day:         4,
						Title:       "Establish Check-In Routine",
						Description: "Schedule regular reviews of your progress",
						ActionItems: []string{
							"Pick a weekly review slot",
							"Write 3 review questions",
							"Add it to your calendar",
							"Do a first mini-review today",
						},
					},
					{
						Day:         5,
						Title:       "Design Reward System",
						Description: "Decide how you will celebrate milestones",
						ActionItems: []string{
							"List milestones worth rewarding",
							"Pick rewards that refuel you",
							"Avoid rewards that undo progress",
							"Schedule the first reward",
						},
					},
					{
						Day:         6,
						Title:       "Build Support Network",
						Description: "Surround yourself with people who want you to win",
						ActionItems: []string{
							"List your supporters",
							"Ask one for specific help",
							"Limit time with drainers",
							"Thank someone who backs you",
						},
					},
					{
						Day:         7,
						Title:       "Commit to Systems",
						Description: "Lock in the accountability structures you built this week",
						ActionItems: []string{
							"Review each system",
							"Fix the weakest link",
							"Write your accountability plan",
							"Share it with your partner",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-3", Text: "I don't rely on willpower alone. I build systems that carry me.", Type: "weekly"},
			{ID: "daily-3-1", Text: "I let others help me stay true to my word.", Type: "daily", Day: 1},
			{ID: "daily-3-2", Text: "What I track, I improve.", Type: "daily", Day: 2},
			{ID: "daily-3-3", Text: "I say my goals out loud and stand behind them.", Type: "daily", Day: 3},
			{ID: "daily-3-4", Text: "Regular review keeps me honest and on course.", Type: "daily", Day: 4},
			{ID: "daily-3-5", Text: "I celebrate progress to fuel more progress.", Type: "daily", Day: 5},
			{ID: "daily-3-6", Text: "I choose company that lifts me higher.", Type: "daily", Day: 6},
			{ID: "daily-3-7", Text: "My systems make showing up the easy choice.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-3-1", Text: "Who holds me accountable, and why did I choose them?", Type: "daily", Day: 1},
			{ID: "prompt-3-2", Text: "What does my tracking system need to stay effortless?", Type: "daily", Day: 2},
			{ID: "prompt-3-3", Text: "How did it feel to state my goal publicly?", Type: "daily", Day: 3},
			{ID: "prompt-3-4", Text: "What did today's check-in reveal about my progress?", Type: "daily", Day: 4},
			{ID: "prompt-3-5", Text: "Which milestone am I most excited to reach and reward?", Type: "daily", Day: 5},
			{ID: "prompt-3-6", Text: "Who in my life genuinely supports this journey?", Type: "daily", Day: 6},
			{ID: "prompt-3-7", Text: "Which of my new systems feels strongest? Which needs work?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-3", Text: "Reflect on Week 3: What structures did I build, and how will they keep me moving when motivation dips?", Type: "weekly"},
		},
	},
	{
		ID:          4,
		Title:       "Courage Week",
		Theme:       "Facing Fears",
		Description: "Build courage by facing your fears and taking bold action toward your goals despite uncertainty.",
		FocusAreas: []FocusArea{
			{
				ID:          "courage",
				Title:       "Fear Mastery",
				Description: "Develop the courage to act despite fear and uncertainty",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Identify Your Fears",
						Description: "Name the fears that hold you back from your goals",
						ActionItems: []string{
							"List your top 5 fears",
							"Rate how much each limits you",
							"Find the belief under each fear",
							"Choose one to work on this week",
						},
					},
					{
						Day:         2,
						Title:       "Face a Small Fear",
						Description: "Take one small action toward something that scares you",
						ActionItems: []string{
							"Pick a low-stakes fear",
							"Act within the hour",
							"Notice what actually happened",
							"Record how you feel after",
						},
					},
					{
						Day:         3,
						Title:       "Reframe Fear as Excitement",
						Description: "Practice converting nervous energy into forward energy",
						ActionItems: []string{
							"Catch fear as it arises",
							"Say \"I am excited\" instead",
							"Breathe and lean in",
							"Note the shift in your body",
						},
					},
					{
						Day:         4,
						Title:       "Take a Bold Action",
						Description: "Do one thing today that your future self will thank you for",
						ActionItems: []string{
							"Choose an action you've delayed",
							"Remove the escape hatch",
							"Act before you overthink",
							"Tell someone you did it",
						},
					},
					{
						Day:         5,
						Title:       "Practice Vulnerability",
						Description: "Share something honest with someone you trust",
						ActionItems: []string{
							"Choose a safe person",
							"Share a real struggle",
							"Resist softening the truth",
							"Notice the connection it builds",
						},
					},
					{
						Day:         6,
						Title:       "Challenge Comfort Zone",
						Description: "Deliberately do something unfamiliar and uncomfortable",
						ActionItems: []string{
							"Pick something genuinely new",
							"Commit before you can cancel",
							"Stay present during discomfort",
							"Debrief what you learned",
						},
					},
					{
						Day:         7,
						Title:       "Celebrate Your Courage",
						Description: "Acknowledge every brave act you took this week",
						ActionItems: []string{
							"List each fear you faced",
							"Write what each act taught you",
							"Notice how fear shrank",
							"Plan your next brave step",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-4", Text: "Courage is not the absence of fear. It is action in spite of it.", Type: "weekly"},
			{ID: "daily-4-1", Text: "I name my fears so they no longer name me.", Type: "daily", Day: 1},
			{ID: "daily-4-2", Text: "Small brave steps build unstoppable momentum.", Type: "daily", Day: 2},
			{ID: "daily-4-3", Text: "My fear is fuel. I turn it into excitement.", Type: "daily", Day: 3},
			{ID: "daily-4-4", Text: "I act boldly today for the person I am becoming.", Type: "daily", Day: 4},
			{ID: "daily-4-5", Text: "My honesty is my strength, not my weakness.", Type: "daily", Day: 5},
			{ID: "daily-4-6", Text: "I grow every time I step outside my comfort zone.", Type: "daily", Day: 6},
			{ID: "daily-4-7", Text: "I am braver than I was seven days ago.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-4-1", Text: "Which fear costs me the most, and what would life look like without it?", Type: "daily", Day: 1},
			{ID: "prompt-4-2", Text: "What small fear did I face today? What actually happened?", Type: "daily", Day: 2},
			{ID: "prompt-4-3", Text: "When did I reframe fear today, and how did it change my state?", Type: "daily", Day: 3},
			{ID: "prompt-4-4", Text: "What bold action did I take, and what did it unlock?", Type: "daily", Day: 4},
			{ID: "prompt-4-5", Text: "How did being vulnerable today affect my relationships?", Type: "daily", Day: 5},
			{ID: "prompt-4-6", Text: "What did discomfort teach me today?", Type: "daily", Day: 6},
			{ID: "prompt-4-7", Text: "Which act of courage am I proudest of this week?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-4", Text: "Reflect on Week 4: How has my relationship with fear changed? What bold thing will I attempt next?", Type: "weekly"},
		},
	},
	{
		ID:          5,
		Title:       "Growth Week",
		Theme:       "Learning Mindset",
		Description: "Cultivate a growth mindset and embrace continuous learning as a path to mastery and transformation.",
		FocusAreas: []FocusArea{
			{
				ID:          "growth",
				Title:       "Continuous Learning",
				Description: "Develop a mindset of growth and embrace learning opportunities",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Embrace Beginner Mindset",
						Description: "Approach something familiar as if seeing it for the first time",
						ActionItems: []string{
							"Pick a familiar skill or routine",
							"Question every assumption",
							"Ask \"what am I missing?\"",
							"Write down one fresh insight",
						},
					},
					{
						Day:         2,
						Title:       "Learn Something New",
						Description: "Spend 30 minutes learning a skill outside your comfort zone",
						ActionItems: []string{
							"Choose a topic that excites you",
							"Block 30 focused minutes",
							"Practice, don't just consume",
							"Summarize what you learned",
						},
					},
					{
						Day:         3,
						Title:       "Seek Feedback",
						Description: "Ask someone for honest feedback on your work or behavior",
						ActionItems: []string{
							"Pick a specific area",
							"Ask someone you respect",
							"Listen without defending",
							"Choose one thing to act on",
						},
					},
					{
						Day:         4,
						Title:       "Learn from Mistakes",
						Description: "Extract lessons from a recent failure or setback",
						ActionItems: []string{
							"Pick a recent mistake",
							"Write what happened factually",
							"Find the lesson inside it",
							"Decide what changes next time",
						},
					},
					{
						Day:         5,
						Title:       "Teach Someone Else",
						Description: "Solidify your knowledge by teaching it to another person",
						ActionItems: []string{
							"Pick something you know well",
							"Find a willing learner",
							"Explain it simply",
							"Note where you struggled to explain",
						},
					},
					{
						Day:         6,
						Title:       "Challenge Your Assumptions",
						Description: "Question a belief you have held without examining",
						ActionItems: []string{
							"Write down a firm belief",
							"Argue the opposite side",
							"Seek disconfirming evidence",
							"Update or reaffirm deliberately",
						},
					},
					{
						Day:         7,
						Title:       "Create Learning Plan",
						Description: "Design an ongoing learning practice beyond this week",
						ActionItems: []string{
							"Choose 1-2 growth skills",
							"Set a weekly learning block",
							"Gather your resources",
							"Define how you'll measure growth",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-5", Text: "I am not yet everything I will be. Every day I grow.", Type: "weekly"},
			{ID: "daily-5-1", Text: "I see with fresh eyes and learn with an open mind.", Type: "daily", Day: 1},
			{ID: "daily-5-2", Text: "Every new skill begins with willing awkwardness.", Type: "daily", Day: 2},
			{ID: "daily-5-3", Text: "Feedback is a gift that shows me my blind spots.", Type: "daily", Day: 3},
			{ID: "daily-5-4", Text: "My mistakes are my most honest teachers.", Type: "daily", Day: 4},
			{ID: "daily-5-5", Text: "When I teach, I learn twice.", Type: "daily", Day: 5},
			{ID: "daily-5-6", Text: "I hold my beliefs firmly enough to test them.", Type: "daily", Day: 6},
			{ID: "daily-5-7", Text: "Learning is not a week. It is my way of living.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-5-1", Text: "What did a beginner's mindset reveal today that expertise had hidden?", Type: "daily", Day: 1},
			{ID: "prompt-5-2", Text: "What did I learn today, and what surprised me about it?", Type: "daily", Day: 2},
			{ID: "prompt-5-3", Text: "What feedback did I receive, and what is true in it?", Type: "daily", Day: 3},
			{ID: "prompt-5-4", Text: "What lesson did my mistake hold once I stopped judging it?", Type: "daily", Day: 4},
			{ID: "prompt-5-5", Text: "What did teaching reveal about the gaps in my own understanding?", Type: "daily", Day: 5},
			{ID: "prompt-5-6", Text: "Which assumption did I challenge today, and what did I find?", Type: "daily", Day: 6},
			{ID: "prompt-5-7", Text: "What will I commit to learning over the next month?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-5", Text: "Reflect on Week 5: How has my relationship with learning and failure shifted this week?", Type: "weekly"},
		},
	},
	{
		ID:          6,
		Title:       "Connection Week",
		Theme:       "Building Relationships",
		Description: "Strengthen your relationships and build meaningful connections that support your growth and well-being.",
		FocusAreas: []FocusArea{
			{
				ID:          "connection",
				Title:       "Meaningful Relationships",
				Description: "Cultivate deeper connections with others",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Practice Active Listening",
						Description: "Give someone your complete attention in a conversation today",
						ActionItems: []string{
							"Put your phone away",
							"Listen to understand, not reply",
							"Ask a follow-up question",
							"Reflect back what you heard",
						},
					},
					{
						Day:         2,
						Title:       "Express Gratitude",
						Description: "Tell someone specifically what you appreciate about them",
						ActionItems: []string{
							"Choose someone who matters",
							"Be specific, not generic",
							"Deliver it personally",
							"Notice their reaction",
						},
					},
					{
						Day:         3,
						Title:       "Deepen a Relationship",
						Description: "Move one relationship beyond surface level",
						ActionItems: []string{
							"Pick a relationship with potential",
							"Ask a deeper question",
							"Share something real yourself",
							"Plan the next conversation",
						},
					},
					{
						Day:         4,
						Title:       "Offer Support",
						Description: "Help someone without being asked and without expecting return",
						ActionItems: []string{
							"Notice who is struggling",
							"Offer concrete help",
							"Follow through today",
							"Keep it quiet",
						},
					},
					{
						Day:         5,
						Title:       "Set Boundaries",
						Description: "Protect your energy by stating one clear boundary",
						ActionItems: []string{
							"Identify a draining dynamic",
							"Decide your limit",
							"Communicate it kindly and clearly",
							"Hold the line",
						},
					},
					{
						Day:         6,
						Title:       "Build New Connection",
						Description: "Start a conversation with someone new",
						ActionItems: []string{
							"Pick a natural setting",
							"Lead with curiosity",
							"Find common ground",
							"Exchange a way to reconnect",
						},
					},
					{
						Day:         7,
						Title:       "Celebrate Relationships",
						Description: "Acknowledge the people who make your life richer",
						ActionItems: []string{
							"List your key relationships",
							"Reach out to three people",
							"Plan time with someone soon",
							"Commit to one connection habit",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-6", Text: "I grow best when I grow with others.", Type: "weekly"},
			{ID: "daily-6-1", Text: "I listen with my full presence.", Type: "daily", Day: 1},
			{ID: "daily-6-2", Text: "I say what I appreciate while I can.", Type: "daily", Day: 2},
			{ID: "daily-6-3", Text: "Depth beats breadth in my relationships.", Type: "daily", Day: 3},
			{ID: "daily-6-4", Text: "I give freely and it comes back multiplied.", Type: "daily", Day: 4},
			{ID: "daily-6-5", Text: "My boundaries protect what matters most.", Type: "daily", Day: 5},
			{ID: "daily-6-6", Text: "Every stranger is a connection waiting to happen.", Type: "daily", Day: 6},
			{ID: "daily-6-7", Text: "I am rich in the people around me.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-6-1", Text: "What did I hear today that I would have missed without truly listening?", Type: "daily", Day: 1},
			{ID: "prompt-6-2", Text: "How did expressing gratitude affect them, and me?", Type: "daily", Day: 2},
			{ID: "prompt-6-3", Text: "What made today's deeper conversation possible?", Type: "daily", Day: 3},
			{ID: "prompt-6-4", Text: "How did helping someone quietly change how I feel?", Type: "daily", Day: 4},
			{ID: "prompt-6-5", Text: "What boundary did I set, and what am I protecting?", Type: "daily", Day: 5},
			{ID: "prompt-6-6", Text: "What did I discover about the new person I met today?", Type: "daily", Day: 6},
			{ID: "prompt-6-7", Text: "Which relationships deserve more of my time and energy?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-6", Text: "Reflect on Week 6: How did investing in connection this week change my energy and outlook?", Type: "weekly"},
		},
	},
	{
		ID:          7,
		Title:       "Balance Week",
		Theme:       "Work-Life Harmony",
		Description: "Create balance and harmony between different areas of your life, ensuring sustainable progress and well-being.",
		FocusAreas: []FocusArea{
			{
				ID:          "balance",
				Title:       "Life Integration",
				Description: "Create harmony across all life areas",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Assess Life Areas",
						Description: "Review how your time maps against what you say matters",
						ActionItems: []string{
							"List your major life areas",
							"Estimate hours spent on each",
							"Compare against your values",
							"Mark the biggest mismatch",
						},
					},
					{
						Day:         2,
						Title:       "Set Boundaries",
						Description: "Draw a clear line between work and personal time",
						ActionItems: []string{
							"Define your end-of-work time",
							"Create a shutdown ritual",
							"Silence work notifications after hours",
							"Tell colleagues your boundary",
						},
					},
					{
						Day:         3,
						Title:       "Practice Presence",
						Description: "Be fully present in whatever you are doing today",
						ActionItems: []string{
							"Do one thing at a time",
							"Take 3 mindful breaths hourly",
							"Eat one meal without screens",
							"Notice when your mind wanders",
						},
					},
					{
						Day:         4,
						Title:       "Schedule Rest",
						Description: "Treat recovery as seriously as you treat work",
						ActionItems: []string{
							"Block rest time in your calendar",
							"Protect your sleep window",
							"Plan one restorative activity",
							"Say no to one commitment",
						},
					},
					{
						Day:         5,
						Title:       "Integrate Priorities",
						Description: "Align your calendar with your top priorities",
						ActionItems: []string{
							"Name your top 3 priorities",
							"Audit this week's calendar",
							"Move or remove misaligned items",
							"Schedule priorities first",
						},
					},
					{
						Day:         6,
						Title:       "Practice Saying No",
						Description: "Decline requests that pull you off course",
						ActionItems: []string{
							"Review pending requests",
							"Decline one gracefully",
							"Offer an alternative if genuine",
							"Notice the space it creates",
						},
					},
					{
						Day:         7,
						Title:       "Create Balance Plan",
						Description: "Design a sustainable weekly rhythm",
						ActionItems: []string{
							"Draft an ideal week template",
							"Include work, rest, and relationships",
							"Build in buffer time",
							"Review it with someone you trust",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-7", Text: "Balance is not something I find. It is something I create.", Type: "weekly"},
			{ID: "daily-7-1", Text: "My time reflects my true priorities.", Type: "daily", Day: 1},
			{ID: "daily-7-2", Text: "Clear boundaries make me better everywhere.", Type: "daily", Day: 2},
			{ID: "daily-7-3", Text: "Wherever I am, I am fully there.", Type: "daily", Day: 3},
			{ID: "daily-7-4", Text: "Rest is productive. Recovery is progress.", Type: "daily", Day: 4},
			{ID: "daily-7-5", Text: "I schedule what matters before what shouts.", Type: "daily", Day: 5},
			{ID: "daily-7-6", Text: "Every no to the trivial is a yes to the vital.", Type: "daily", Day: 6},
			{ID: "daily-7-7", Text: "My rhythm is sustainable and mine.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-7-1", Text: "Where is the biggest gap between my time and my values?", Type: "daily", Day: 1},
			{ID: "prompt-7-2", Text: "How did my work boundary hold today? What tested it?", Type: "daily", Day: 2},
			{ID: "prompt-7-3", Text: "When was I most present today? When was I most scattered?", Type: "daily", Day: 3},
			{ID: "prompt-7-4", Text: "How does real rest feel different from collapsing?", Type: "daily", Day: 4},
			{ID: "prompt-7-5", Text: "What did I remove from my week, and what did it make room for?", Type: "daily", Day: 5},
			{ID: "prompt-7-6", Text: "What did I say no to today, and how did it feel?", Type: "daily", Day: 6},
			{ID: "prompt-7-7", Text: "What does my ideal sustainable week actually look like?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-7", Text: "Reflect on Week 7: What did I learn about the balance my life actually needs, rather than the one I imagined?", Type: "weekly"},
		},
	},
	{
		ID:          8,
		Title:       "Gratitude Week",
		Theme:       "Appreciating Life",
		Description: "Cultivate gratitude and appreciation for the abundance in your life, shifting focus to what is working.",
		FocusAreas: []FocusArea{
			{
				ID:          "gratitude",
				Title:       "Gratitude Practice",
				Description: "Develop a consistent gratitude practice",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Start Gratitude Journal",
						Description: "Write down three things you are grateful for today",
						ActionItems: []string{
							"Choose a dedicated notebook or app",
							"Write 3 specific items",
							"Include why each matters",
							"Set a daily reminder",
						},
					},
					{
						Day:         2,
						Title:       "Express Gratitude to Others",
						Description: "Send a genuine thank-you message to someone",
						ActionItems: []string{
							"Think of someone underthanked",
							"Write a specific message",
							"Send it today",
							"Do it without expecting a reply",
						},
					},
					{
						Day:         3,
						Title:       "Find Gratitude in Challenges",
						Description: "Identify the hidden gift inside a current difficulty",
						ActionItems: []string{
							"Name a current challenge",
							"List what it is teaching you",
							"Find one unexpected benefit",
							"Reframe it in writing",
						},
					},
					{
						Day:         4,
						Title:       "Gratitude Walk",
						Description: "Take a walk focused entirely on noticing what is good",
						ActionItems: []string{
							"Walk for at least 15 minutes",
							"Leave headphones behind",
							"Name what you appreciate as you go",
							"Note how you feel afterward",
						},
					},
					{
						Day:         5,
						Title:       "Gratitude for Yourself",
						Description: "Appreciate your own effort, growth, and qualities",
						ActionItems: []string{
							"List 5 things you value in yourself",
							"Thank your body for one thing",
							"Acknowledge this week's effort",
							"Read the list aloud",
						},
					},
					{
						Day:         6,
						Title:       "Gratitude Meditation",
						Description: "Spend 10 quiet minutes dwelling on appreciation",
						ActionItems: []string{
							"Find a quiet spot",
							"Breathe slowly for 10 minutes",
							"Hold one grateful image at a time",
							"Close with one word of thanks",
						},
					},
					{
						Day:         7,
						Title:       "Create Gratitude Ritual",
						Description: "Design a gratitude habit that outlasts this week",
						ActionItems: []string{
							"Pick a daily trigger moment",
							"Keep the ritual under 2 minutes",
							"Tie it to an existing habit",
							"Commit for 30 days",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-8", Text: "What I appreciate, appreciates.", Type: "weekly"},
			{ID: "daily-8-1", Text: "I notice the good that was always there.", Type: "daily", Day: 1},
			{ID: "daily-8-2", Text: "My thanks, spoken aloud, multiplies joy.", Type: "daily", Day: 2},
			{ID: "daily-8-3", Text: "Even my challenges carry gifts.", Type: "daily", Day: 3},
			{ID: "daily-8-4", Text: "The world is generous when I slow down to see it.", Type: "daily", Day: 4},
			{ID: "daily-8-5", Text: "I am grateful for who I am becoming.", Type: "daily", Day: 5},
			{ID: "daily-8-6", Text: "Stillness reveals abundance.", Type: "daily", Day: 6},
			{ID: "daily-8-7", Text: "Gratitude is my daily practice, not my occasional mood.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-8-1", Text: "What three things am I grateful for today, and why these?", Type: "daily", Day: 1},
			{ID: "prompt-8-2", Text: "How did expressing thanks change my connection with that person?", Type: "daily", Day: 2},
			{ID: "prompt-8-3", Text: "What is my current challenge quietly teaching me?", Type: "daily", Day: 3},
			{ID: "prompt-8-4", Text: "What did I notice on my walk that I usually rush past?", Type: "daily", Day: 4},
			{ID: "prompt-8-5", Text: "What do I appreciate about myself that I rarely acknowledge?", Type: "daily", Day: 5},
			{ID: "prompt-8-6", Text: "What surfaced during my gratitude meditation?", Type: "daily", Day: 6},
			{ID: "prompt-8-7", Text: "What gratitude ritual will I carry forward, and when will I do it?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-8", Text: "Reflect on Week 8: How has a week of deliberate gratitude changed what I notice and how I feel?", Type: "weekly"},
		},
	},
	{
		ID:          9,
		Title:       "Momentum Week",
		Theme:       "Building Habits",
		Description: "Build powerful habits that support your goals and create sustainable momentum toward your vision.",
		FocusAreas: []FocusArea{
			{
				ID:          "habits",
				Title:       "Habit Formation",
				Description: "Develop and strengthen positive habits",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Identify Keystone Habits",
						Description: "Find the few habits that would improve everything else",
						ActionItems: []string{
							"List habits you want",
							"Find the ones with ripple effects",
							"Choose 1-2 keystones",
							"Define what success looks like",
						},
					},
					{
						Day:         2,
						Title:       "Start Small",
						Description: "Shrink your new habit until it is impossible to fail",
						ActionItems: []string{
							"Cut the habit to 2 minutes",
							"Do it today",
							"Resist doing more",
							"Mark the win",
						},
					},
					{
						Day:         3,
						Title:       "Stack Habits",
						Description: "Attach your new habit to an existing routine",
						ActionItems: []string{
							"List your automatic routines",
							"Write an after-X-I-do-Y plan",
							"Run the stack today",
							"Adjust the anchor if it slips",
						},
					},
					{
						Day:         4,
						Title:       "Design Your Environment",
						Description: "Make good habits obvious and bad habits invisible",
						ActionItems: []string{
							"Put cues in plain sight",
							"Add friction to temptations",
							"Prepare tonight for tomorrow",
							"Remove one bad-habit trigger",
						},
					},
					{
						Day:         5,
						Title:       "Track Your Habits",
						Description: "Keep a visible record of your daily execution",
						ActionItems: []string{
							"Create a simple habit tracker",
							"Mark today's completion",
							"Keep the chain visible",
							"Review it each evening",
						},
					},
					{
						Day:         6,
						Title:       "Handle Missed Days",
						Description: "Plan your comeback before you ever miss",
						ActionItems: []string{
							"Adopt the never-miss-twice rule",
							"Write your recovery plan",
							"Drop the guilt, keep the habit",
							"Identify your riskiest day",
						},
					},
					{
						Day:         7,
						Title:       "Celebrate Streaks",
						Description: "Honor the consistency you are building",
						ActionItems: []string{
							"Count your current streaks",
							"Reward the effort, not just results",
							"Share a streak with someone",
							"Set your next streak target",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-9", Text: "I am what I repeatedly do. My habits are my future.", Type: "weekly"},
			{ID: "daily-9-1", Text: "One keystone habit moves my whole life forward.", Type: "daily", Day: 1},
			{ID: "daily-9-2", Text: "Small and consistent beats big and occasional.", Type: "daily", Day: 2},
			{ID: "daily-9-3", Text: "I link new habits to the life I already live.", Type: "daily", Day: 3},
			{ID: "daily-9-4", Text: "I shape my environment so it shapes me back.", Type: "daily", Day: 4},
			{ID: "daily-9-5", Text: "Every mark on my tracker is a vote for who I am becoming.", Type: "daily", Day: 5},
			{ID: "daily-9-6", Text: "I never miss twice.", Type: "daily", Day: 6},
			{ID: "daily-9-7", Text: "My streak is proof that I keep promises to myself.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-9-1", Text: "Which keystone habit would change the most for me, and why?", Type: "daily", Day: 1},
			{ID: "prompt-9-2", Text: "How did it feel to do a tiny version of my habit today?", Type: "daily", Day: 2},
			{ID: "prompt-9-3", Text: "Which anchor routine worked best for my habit stack?", Type: "daily", Day: 3},
			{ID: "prompt-9-4", Text: "What change to my environment had the biggest effect today?", Type: "daily", Day: 4},
			{ID: "prompt-9-5", Text: "What does my tracker show me about my consistency?", Type: "daily", Day: 5},
			{ID: "prompt-9-6", Text: "What is my plan for the next day I inevitably miss?", Type: "daily", Day: 6},
			{ID: "prompt-9-7", Text: "Which streak am I proudest of, and what does it say about me?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-9", Text: "Reflect on Week 9: Which habits are now carrying me, and which still need scaffolding?", Type: "weekly"},
		},
	},
	{
		ID:          10,
		Title:       "Breakthrough Week",
		Theme:       "Overcoming Obstacles",
		Description: "Break through limiting beliefs and obstacles that have been holding you back from achieving your full potential.",
		FocusAreas: []FocusArea{
			{
				ID:          "breakthrough",
				Title:       "Obstacle Mastery",
				Description: "Identify and overcome barriers to your success",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Identify Limiting Beliefs",
						Description: "Surface the beliefs that quietly cap your potential",
						ActionItems: []string{
							"Complete \"I can't because...\" 5 times",
							"Trace where each belief came from",
							"Rate how true each really is",
							"Pick the most limiting one",
						},
					},
					{
						Day:         2,
						Title:       "Challenge Your Stories",
						Description: "Separate the facts from the narrative you tell yourself",
						ActionItems: []string{
							"Write the story you tell",
							"List only the verifiable facts",
							"Write an alternative story",
							"Choose the story that serves you",
						},
					},
					{
						Day:         3,
						Title:       "Face Your Biggest Obstacle",
						Description: "Take direct action against your largest barrier",
						ActionItems: []string{
							"Name the obstacle precisely",
							"Break it into parts",
							"Attack the first part today",
							"Record what moved",
						},
					},
					{
						Day:         4,
						Title:       "Seek Support",
						Description: "Ask for help with something you have struggled alone with",
						ActionItems: []string{
							"Admit where you are stuck",
							"Identify who can help",
							"Make a specific ask",
							"Accept the help offered",
						},
					},
					{
						Day:         5,
						Title:       "Reframe Failure",
						Description: "Rewrite your relationship with falling short",
						ActionItems: []string{
							"List 3 past failures",
							"Write what each made possible",
							"Define failure as data",
							"Plan your next worthwhile risk",
						},
					},
					{
						Day:         6,
						Title:       "Take Bold Action",
						Description: "Act decisively on what you have been avoiding",
						ActionItems: []string{
							"Name the avoided action",
							"Set a deadline of today",
							"Do it imperfectly",
							"Notice the obstacle shrink",
						},
					},
					{
						Day:         7,
						Title:       "Celebrate Breakthroughs",
						Description: "Acknowledge the walls you moved through this week",
						ActionItems: []string{
							"List this week's breakthroughs",
							"Write the old belief vs the new",
							"Thank the people who helped",
							"Choose your next frontier",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-10", Text: "The obstacle is not in my way. It is the way.", Type: "weekly"},
			{ID: "daily-10-1", Text: "I question every belief that shrinks me.", Type: "daily", Day: 1},
			{ID: "daily-10-2", Text: "I am the author of my story, and I write it true.", Type: "daily", Day: 2},
			{ID: "daily-10-3", Text: "I move toward what others avoid.", Type: "daily", Day: 3},
			{ID: "daily-10-4", Text: "Asking for help is strength in action.", Type: "daily", Day: 4},
			{ID: "daily-10-5", Text: "Failure is information, not identity.", Type: "daily", Day: 5},
			{ID: "daily-10-6", Text: "Imperfect action beats perfect hesitation.", Type: "daily", Day: 6},
			{ID: "daily-10-7", Text: "I have broken through before, and I will again.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-10-1", Text: "Which limiting belief costs me the most, and where did it come from?", Type: "daily", Day: 1},
			{ID: "prompt-10-2", Text: "What story did I rewrite today, and what are the actual facts?", Type: "daily", Day: 2},
			{ID: "prompt-10-3", Text: "What happened when I faced my biggest obstacle head-on?", Type: "daily", Day: 3},
			{ID: "prompt-10-4", Text: "What did asking for help make possible today?", Type: "daily", Day: 4},
			{ID: "prompt-10-5", Text: "Which past failure turned out to be a doorway?", Type: "daily", Day: 5},
			{ID: "prompt-10-6", Text: "What did I finally do today, and what was I actually afraid of?", Type: "daily", Day: 6},
			{ID: "prompt-10-7", Text: "What breakthrough this week changes what I now believe is possible?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-10", Text: "Reflect on Week 10: Which walls turned out to be doors, and what does that tell me about the rest?", Type: "weekly"},
		},
	},
	{
		ID:          11,
		Title:       "Mastery Week",
		Theme:       "Refining Skills",
		Description: "Focus on mastery and excellence, refining your skills and deepening your expertise in areas that matter.",
		FocusAreas: []FocusArea{
			{
				ID:          "mastery",
				Title:       "Skill Refinement",
				Description: "Develop mastery through deliberate practice",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Identify Mastery Areas",
						Description: "Choose the skills worth a decade of your attention",
						ActionItems: []string{
							"List skills tied to your vision",
							"Rank by impact and joy",
							"Choose 1-2 mastery areas",
							"Write why each matters",
						},
					},
					{
						Day:         2,
						Title:       "Practice Deliberately",
						Description: "Train at the edge of your ability, not in your comfort zone",
						ActionItems: []string{
							"Isolate your weakest sub-skill",
							"Design a focused drill",
							"Practice 30 minutes with full attention",
							"Note exactly where you failed",
						},
					},
					{
						Day:         3,
						Title:       "Study Experts",
						Description: "Learn from people who are where you want to be",
						ActionItems: []string{
							"Pick 2-3 role models",
							"Study how they practice",
							"Extract one technique",
							"Apply it in your next session",
						},
					},
					{
						Day:         4,
						Title:       "Push Your Limits",
						Description: "Attempt something just beyond your current level",
						ActionItems: []string{
							"Set a stretch challenge",
							"Expect to struggle",
							"Complete it regardless of quality",
							"Record what the struggle taught",
						},
					},
					{
						Day:         5,
						Title:       "Get Expert Feedback",
						Description: "Have someone skilled critique your work",
						ActionItems: []string{
							"Find a qualified reviewer",
							"Show your actual work",
							"Ask what to fix first",
							"Schedule the follow-up",
						},
					},
					{
						Day:         6,
						Title:       "Teach What You Learn",
						Description: "Deepen mastery by articulating it for others",
						ActionItems: []string{
							"Pick one hard-won insight",
							"Write or explain it simply",
							"Share it publicly or privately",
							"Note the gaps teaching exposed",
						},
					},
					{
						Day:         7,
						Title:       "Reflect on Mastery Journey",
						Description: "Map how far you have come and where mastery leads next",
						ActionItems: []string{
							"Compare yourself to week 1",
							"List your skill gains",
							"Define the next milestone",
							"Commit to an ongoing practice cadence",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-11", Text: "Mastery is not a destination. It is how I walk the path.", Type: "weekly"},
			{ID: "daily-11-1", Text: "I choose depth over dabbling.", Type: "daily", Day: 1},
			{ID: "daily-11-2", Text: "I practice at my edge, where growth lives.", Type: "daily", Day: 2},
			{ID: "daily-11-3", Text: "I learn from the best and make it my own.", Type: "daily", Day: 3},
			{ID: "daily-11-4", Text: "Struggle today is skill tomorrow.", Type: "daily", Day: 4},
			{ID: "daily-11-5", Text: "Honest critique sharpens me faster than praise.", Type: "daily", Day: 5},
			{ID: "daily-11-6", Text: "I teach to deepen what I know.", Type: "daily", Day: 6},
			{ID: "daily-11-7", Text: "I honor how far I have come and keep walking.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-11-1", Text: "Which skills deserve my deepest, longest investment?", Type: "daily", Day: 1},
			{ID: "prompt-11-2", Text: "What did practicing at my edge feel like today?", Type: "daily", Day: 2},
			{ID: "prompt-11-3", Text: "What does my role model do that I can start doing now?", Type: "daily", Day: 3},
			{ID: "prompt-11-4", Text: "What did I attempt beyond my level, and what did it teach me?", Type: "daily", Day: 4},
			{ID: "prompt-11-5", Text: "What feedback did I receive, and what will I fix first?", Type: "daily", Day: 5},
			{ID: "prompt-11-6", Text: "What gaps did teaching reveal in my understanding?", Type: "daily", Day: 6},
			{ID: "prompt-11-7", Text: "How has my skill changed since week 1, and what comes next?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-11", Text: "Reflect on Week 11: What does pursuing mastery, rather than completion, change about how I work?", Type: "weekly"},
		},
	},
	{
		ID:          12,
		Title:       "Victory Week",
		Theme:       "Celebrating Achievements",
		Description: "Celebrate your journey, acknowledge your achievements, and set intentions for continued growth beyond these 12 weeks.",
		FocusAreas: []FocusArea{
			{
				ID:          "celebration",
				Title:       "Achievement Recognition",
				Description: "Acknowledge and celebrate your transformation",
				DailyChallenges: []DailyChallenge{
					{
						Day:         1,
						Title:       "Review Your Journey",
						Description: "Walk back through all 12 weeks and see the whole arc",
						ActionItems: []string{
							"Reread your vision statement",
							"Skim your journal entries",
							"Note the turning points",
							"Write a one-page journey summary",
						},
					},
					{
						Day:         2,
						Title:       "List Your Achievements",
						Description: "Document everything you accomplished, large and small",
						ActionItems: []string{
							"List at least 20 wins",
							"Include invisible victories",
							"Note which surprised you",
							"Keep the list somewhere visible",
						},
					},
					{
						Day:         3,
						Title:       "Measure Your Progress",
						Description: "Compare today's metrics against your week 1 baseline",
						ActionItems: []string{
							"Pull up your baseline data",
							"Measure the same metrics today",
							"Calculate the changes",
							"Celebrate the deltas honestly",
						},
					},
					{
						Day:         4,
						Title:       "Express Gratitude",
						Description: "Thank everyone who supported your transformation",
						ActionItems: []string{
							"List your supporters",
							"Send personal thanks to each",
							"Be specific about their impact",
							"Include yourself on the list",
						},
					},
					{
						Day:         5,
						Title:       "Share Your Story",
						Description: "Tell someone what these 12 weeks taught you",
						ActionItems: []string{
							"Choose your audience",
							"Share the struggle, not just wins",
							"Name the key lesson",
							"Invite them to start their own journey",
						},
					},
					{
						Day:         6,
						Title:       "Set Future Goals",
						Description: "Point your momentum at the next horizon",
						ActionItems: []string{
							"Draft your next 12-week vision",
							"Set 3-5 new goals",
							"Keep the habits that worked",
							"Schedule your start date",
						},
					},
					{
						Day:         7,
						Title:       "Celebrate Your Victory",
						Description: "Mark the end of this journey with a real celebration",
						ActionItems: []string{
							"Plan a genuine celebration",
							"Include the people who mattered",
							"Acknowledge who you have become",
							"Rest before the next climb",
						},
					},
				},
			},
		},
		Mantras: []Mantra{
			{ID: "weekly-12", Text: "I finished what I started. I am not who I was 12 weeks ago.", Type: "weekly"},
			{ID: "daily-12-1", Text: "I honor every step of the road behind me.", Type: "daily", Day: 1},
			{ID: "daily-12-2", Text: "My wins are real and I claim them.", Type: "daily", Day: 2},
			{ID: "daily-12-3", Text: "The numbers tell a story of my growth.", Type: "daily", Day: 3},
			{ID: "daily-12-4", Text: "I am grateful for everyone who walked with me.", Type: "daily", Day: 4},
			{ID: "daily-12-5", Text: "My story can light the way for someone else.", Type: "daily", Day: 5},
			{ID: "daily-12-6", Text: "This ending is my next beginning.", Type: "daily", Day: 6},
			{ID: "daily-12-7", Text: "I celebrate fully. I earned this.", Type: "daily", Day: 7},
		},
		Prompts: []Prompt{
			{ID: "prompt-12-1", Text: "Looking back across 12 weeks, what changed most in me?", Type: "daily", Day: 1},
			{ID: "prompt-12-2", Text: "Which achievement am I proudest of, and why?", Type: "daily", Day: 2},
			{ID: "prompt-12-3", Text: "What do my before-and-after numbers say about my effort?", Type: "daily", Day: 3},
			{ID: "prompt-12-4", Text: "Who helped me most, and have I told them?", Type: "daily", Day: 4},
			{ID: "prompt-12-5", Text: "What is the one lesson from my story worth passing on?", Type: "daily", Day: 5},
			{ID: "prompt-12-6", Text: "What do I want the next 12 weeks to make of me?", Type: "daily", Day: 6},
			{ID: "prompt-12-7", Text: "How will I celebrate, and what am I really celebrating?", Type: "daily", Day: 7},
			{ID: "weekly-prompt-12", Text: "Reflect on Week 12: What transformation am I taking with me, and what intention do I set for what comes next?", Type: "weekly"},
		},
	},
}
