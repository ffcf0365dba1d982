package templates

// catalog is the static template table, built once at process start.
// Categories without field declarations are generated exclusively through
// the remote pipeline and carry metadata only.
var catalog = []Template{
	{
		ID:          "blog-posts",
		Name:        "Blog Posts",
		Description: "Generate SEO-optimized blog post prompts with structured outlines and keyword integration.",
		Icon:        "edit",
		Available:   true,
		Fields: []Field{
			{
				Name:        "topic",
				Label:       "Blog Post Topic",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "e.g., 'How to Start a Successful E-commerce Business'",
				HelpText:    "Enter the main topic or title for your blog post",
			},
			{
				Name:     "audience",
				Label:    "Target Audience",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"beginners",
					"intermediate users",
					"advanced practitioners",
					"business owners",
					"entrepreneurs",
					"students",
					"professionals",
					"general audience",
				},
				HelpText: "Who is the primary audience for this blog post?",
			},
			{
				Name:     "tone",
				Label:    "Writing Tone",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"professional",
					"conversational",
					"friendly",
					"authoritative",
					"educational",
					"inspiring",
					"casual",
					"formal",
				},
				HelpText: "Choose the tone that best fits your brand and audience",
			},
			{
				Name:        "keywords",
				Label:       "SEO Keywords",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "e.g., e-commerce, online business, digital marketing, startup tips",
				HelpText:    "Enter relevant keywords separated by commas (optional but recommended)",
			},
		},
	},
	{
		ID:          "social-media",
		Name:        "Social Media",
		Description: "Create engaging social media content prompts for various platforms and audiences.",
		Icon:        "twitter",
		Available:   true,
	},
	{
		ID:          "creative-writing",
		Name:        "Creative Writing",
		Description: "Develop creative storytelling and narrative prompts for fiction and creative projects.",
		Icon:        "feather-alt",
		Available:   true,
	},
	{
		ID:          "marketing-copy",
		Name:        "Marketing Copy",
		Description: "Generate persuasive marketing and sales copy for various campaigns and channels.",
		Icon:        "bullhorn",
		Available:   true,
	},
	{
		ID:          "emails",
		Name:        "Emails",
		Description: "Create professional email templates and communication prompts for various purposes.",
		Icon:        "envelope",
		Available:   true,
	},
	{
		ID:          "idea-generation",
		Name:        "Idea Generation",
		Description: "Generate creative ideas and brainstorming prompts for projects and innovations.",
		Icon:        "lightbulb",
		Available:   true,
	},
	{
		ID:          "scripts",
		Name:        "Scripts",
		Description: "Create engaging scripts for videos, podcasts, explainers, and presentations.",
		Icon:        "video",
		Available:   true,
	},
	{
		ID:          "code-help",
		Name:        "Code Generation",
		Description: "Generate code snippets, debug help, and programming assistance prompts.",
		Icon:        "code",
		Available:   true,
	},
	{
		ID:          "resumes-cvs",
		Name:        "Resumes & CVs",
		Description: "Create professional resumes, CVs, and cover letters tailored to specific roles.",
		Icon:        "user",
		Available:   true,
	},
	{
		ID:          "lesson-plans",
		Name:        "Educational Materials",
		Description: "Develop lesson plans, educational content, and learning materials for various subjects.",
		Icon:        "book",
		Available:   true,
	},
	{
		ID:          "image-generation",
		Name:        "Image Generation",
		Description: "Create detailed prompts for AI image generators like DALL-E, Midjourney, and Stable Diffusion.",
		Icon:        "image",
		Available:   true,
		Fields: []Field{
			{
				Name:        "subject",
				Label:       "Main Subject",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "A majestic mountain landscape...",
				HelpText:    "Describe the main focus of your image",
			},
			{
				Name:     "style",
				Label:    "Art Style",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Photorealistic",
					"Digital Art",
					"Oil Painting",
					"Watercolor",
					"Pencil Sketch",
					"Abstract",
					"Minimalist",
					"Vintage/Retro",
					"Cartoon/Animation",
					"Fantasy Art",
					"Concept Art",
					"Street Art",
				},
				HelpText: "Choose the artistic style for your image",
			},
			{
				Name:     "mood",
				Label:    "Mood/Atmosphere",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Serene/Peaceful",
					"Dramatic/Intense",
					"Mysterious/Dark",
					"Bright/Cheerful",
					"Romantic/Dreamy",
					"Epic/Heroic",
					"Cozy/Warm",
					"Futuristic/Sci-fi",
					"Nostalgic/Vintage",
					"Surreal/Otherworldly",
				},
				HelpText: "Set the emotional tone of the image",
			},
			{
				Name:     "lighting",
				Label:    "Lighting",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Natural daylight",
					"Golden hour",
					"Blue hour",
					"Dramatic shadows",
					"Soft diffused light",
					"Neon lighting",
					"Candlelight/Fire",
					"Moonlight",
					"Studio lighting",
					"Backlit/Silhouette",
				},
				HelpText: "Specify the lighting conditions",
			},
			{
				Name:     "composition",
				Label:    "Composition",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Close-up/Portrait",
					"Medium shot",
					"Wide shot/Landscape",
					"Bird's eye view",
					"Low angle",
					"High angle",
					"Rule of thirds",
					"Centered composition",
					"Symmetrical",
					"Dynamic/Action shot",
				},
				HelpText: "Choose the framing and perspective",
			},
			{
				Name:        "colors",
				Label:       "Color Palette",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Warm earth tones, vibrant blues...",
				HelpText:    "Describe preferred colors or color schemes",
			},
			{
				Name:        "details",
				Label:       "Specific Details",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Include specific elements, textures, objects...",
				HelpText:    "Add any specific details or elements you want included",
			},
		},
	},
	{
		ID:          "video-generation",
		Name:        "Video Generation",
		Description: "Create prompts for AI video generators like Runway, Pika Labs, and Stable Video Diffusion.",
		Icon:        "video",
		Available:   true,
		Fields: []Field{
			{
				Name:        "concept",
				Label:       "Video Concept",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "A time-lapse of a flower blooming in a garden...",
				HelpText:    "Describe what happens in your video",
			},
			{
				Name:     "duration",
				Label:    "Video Length",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Short (2-4 seconds)",
					"Medium (4-8 seconds)",
					"Long (8-16 seconds)",
					"Extended (16+ seconds)",
				},
				HelpText: "Choose the desired video duration",
			},
			{
				Name:     "movement",
				Label:    "Camera Movement",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Static/No movement",
					"Slow pan left",
					"Slow pan right",
					"Zoom in",
					"Zoom out",
					"Dolly forward",
					"Dolly backward",
					"Orbit around subject",
					"Tilt up",
					"Tilt down",
					"Smooth tracking shot",
				},
				HelpText: "Specify how the camera should move",
			},
			{
				Name:     "style",
				Label:    "Visual Style",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Cinematic/Film-like",
					"Documentary style",
					"Music video aesthetic",
					"Commercial/Advertisement",
					"Artistic/Experimental",
					"Vintage/Retro",
					"Futuristic/Sci-fi",
					"Natural/Realistic",
					"Stylized/Animated",
					"Time-lapse",
					"Slow motion",
				},
				HelpText: "Choose the overall visual style",
			},
			{
				Name:     "mood",
				Label:    "Mood/Tone",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Peaceful/Serene",
					"Energetic/Dynamic",
					"Dramatic/Intense",
					"Mysterious/Suspenseful",
					"Joyful/Uplifting",
					"Melancholic/Emotional",
					"Epic/Grand",
					"Intimate/Personal",
					"Surreal/Dreamlike",
					"Professional/Corporate",
				},
				HelpText: "Set the emotional tone of the video",
			},
			{
				Name:     "lighting",
				Label:    "Lighting Setup",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Natural sunlight",
					"Golden hour lighting",
					"Blue hour ambiance",
					"Studio lighting",
					"Dramatic shadows",
					"Soft diffused light",
					"Neon/Artificial lighting",
					"Candlelight/Warm glow",
					"Moonlight/Night scene",
					"High contrast lighting",
				},
				HelpText: "Specify the lighting conditions",
			},
			{
				Name:        "setting",
				Label:       "Setting/Location",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Modern office, forest clearing, urban rooftop...",
				HelpText:    "Describe where the video takes place",
			},
			{
				Name:        "details",
				Label:       "Additional Details",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Specific objects, effects, transitions...",
				HelpText:    "Include any specific elements or effects you want",
			},
		},
	},
	{
		ID:          "customer-support",
		Name:        "Customer Support & Communication",
		Description: "Write calm replies to frustrated customers, draft refund emails, and create clear support responses.",
		Icon:        "headphones",
		Available:   true,
		Fields: []Field{
			{
				Name:        "situation",
				Label:       "Customer Situation",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Customer is frustrated about delayed delivery and requesting refund...",
				HelpText:    "Describe the customer issue or situation",
			},
			{
				Name:     "responseType",
				Label:    "Response Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Apologetic response to complaint",
					"Refund/compensation email",
					"Clear answer to complex question",
					"Follow-up after resolution",
					"Escalation to manager",
					"Product/service explanation",
					"Policy clarification",
				},
				HelpText: "Choose the type of customer communication",
			},
			{
				Name:     "tone",
				Label:    "Desired Tone",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Empathetic and understanding",
					"Professional and direct",
					"Apologetic and solution-focused",
					"Warm and friendly",
					"Confident and reassuring",
					"Formal and respectful",
				},
				HelpText: "Set the tone for the customer interaction",
			},
			{
				Name:     "outcome",
				Label:    "Desired Outcome",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Resolve and retain customer",
					"Provide refund gracefully",
					"Offer alternative solution",
					"Set clear expectations",
					"Escalate appropriately",
					"Build customer confidence",
				},
				HelpText: "What outcome are you hoping to achieve?",
			},
			{
				Name:        "constraints",
				Label:       "Constraints/Policies",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Cannot offer full refund, but can provide store credit...",
				HelpText:    "Any company policies or constraints to consider",
			},
		},
	},
	{
		ID:          "meeting-prep",
		Name:        "Meeting Prep & Summaries",
		Description: "Turn agendas into structured plans, summarize transcripts, and create follow-up emails.",
		Icon:        "calendar",
		Available:   true,
		Fields: []Field{
			{
				Name:     "taskType",
				Label:    "Task Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Structure meeting agenda",
					"Summarize meeting transcript",
					"Create follow-up email",
					"Extract action items",
					"Prepare talking points",
					"Generate meeting minutes",
				},
				HelpText: "Choose what you need help with",
			},
			{
				Name:        "content",
				Label:       "Meeting Content",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Paste meeting agenda, transcript, or notes here...",
				HelpText:    "Provide the meeting material to work with",
			},
			{
				Name:     "meetingType",
				Label:    "Meeting Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Team standup",
					"Client presentation",
					"Strategy session",
					"Project kickoff",
					"Performance review",
					"Board meeting",
					"Sales call",
					"All-hands meeting",
				},
				HelpText: "What type of meeting is this?",
			},
			{
				Name:        "audience",
				Label:       "Audience",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Senior management, client stakeholders, development team...",
				HelpText:    "Who will receive this output?",
			},
			{
				Name:        "focus",
				Label:       "Key Focus Areas",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Budget decisions, timeline concerns, next quarter goals...",
				HelpText:    "What should be emphasized or highlighted?",
			},
		},
	},
	{
		ID:          "product-descriptions",
		Name:        "Product Descriptions & E-commerce",
		Description: "Optimize Shopify descriptions for SEO, write persuasive Etsy copy, and generate Amazon-style bullet points.",
		Icon:        "shopping-cart",
		Available:   true,
		Fields: []Field{
			{
				Name:     "platform",
				Label:    "E-commerce Platform",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Shopify (SEO-optimized)",
					"Etsy (handmade/vintage)",
					"Amazon (bullet points)",
					"eBay (auction style)",
					"Facebook Marketplace",
					"General online store",
				},
				HelpText: "Choose the platform for optimization",
			},
			{
				Name:        "product",
				Label:       "Product Details",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Handmade ceramic coffee mug, 12oz capacity, dishwasher safe...",
				HelpText:    "Describe your product in detail",
			},
			{
				Name:        "targetAudience",
				Label:       "Target Audience",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "Coffee enthusiasts, home decorators, gift buyers...",
				HelpText:    "Who is your ideal customer?",
			},
			{
				Name:        "keyFeatures",
				Label:       "Key Features/Benefits",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Unique glaze pattern, microwave safe, perfect gift...",
				HelpText:    "List the main selling points",
			},
			{
				Name:        "keywords",
				Label:       "Keywords to Include",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "ceramic mug, handmade pottery, coffee gift...",
				HelpText:    "Important keywords for SEO (comma-separated)",
			},
			{
				Name:     "priceRange",
				Label:    "Price Range",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Budget ($1-20)",
					"Mid-range ($20-100)",
					"Premium ($100-500)",
					"Luxury ($500+)",
				},
				HelpText: "What price tier is this product?",
			},
		},
	},
	{
		ID:          "personal-development",
		Name:        "Personal Development & Journaling",
		Description: "Create reflective prompts, gratitude journal starters, and mental reset exercises for stress and anxiety.",
		Icon:        "heart",
		Available:   true,
		Fields: []Field{
			{
				Name:     "journalType",
				Label:    "Journal Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Reflective prompts",
					"Gratitude journal",
					"Mental reset/stress relief",
					"Goal setting",
					"Daily check-in",
					"Growth mindset",
					"Self-compassion",
					"Mindfulness practice",
				},
				HelpText: "What type of journaling practice?",
			},
			{
				Name:     "timeframe",
				Label:    "Time Frame",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Daily practice",
					"Weekly reflection",
					"Monthly review",
					"End of year",
					"After challenging events",
					"Morning routine",
					"Evening wind-down",
				},
				HelpText: "When will this be used?",
			},
			{
				Name:     "focus",
				Label:    "Focus Area",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Personal growth",
					"Stress management",
					"Relationship building",
					"Career development",
					"Health and wellness",
					"Creativity and inspiration",
					"Financial mindset",
					"Life transitions",
				},
				HelpText: "What area of life to focus on?",
			},
			{
				Name:        "challenge",
				Label:       "Current Challenge",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Feeling overwhelmed at work, relationship difficulties...",
				HelpText:    "Any specific challenges you are facing?",
			},
			{
				Name:     "tone",
				Label:    "Desired Tone",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Gentle and supportive",
					"Challenging and motivating",
					"Calm and meditative",
					"Practical and action-oriented",
					"Curious and exploratory",
					"Compassionate and healing",
				},
				HelpText: "What tone feels right for you?",
			},
		},
	},
	{
		ID:          "thinking-tools",
		Name:        "Thinking Tools & Frameworks",
		Description: "Generate SWOT analysis, turn thoughts into SMART goals, use 5 Whys method, and build 30-60-90 day plans.",
		Icon:        "brain",
		Available:   true,
		Fields: []Field{
			{
				Name:     "framework",
				Label:    "Thinking Framework",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"SWOT Analysis",
					"SMART Goals",
					"5 Whys Method",
					"30-60-90 Day Plan",
					"Pros and Cons List",
					"Decision Matrix",
					"Root Cause Analysis",
					"Force Field Analysis",
				},
				HelpText: "Choose the thinking framework to apply",
			},
			{
				Name:        "context",
				Label:       "Context/Situation",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Starting a new job, launching a product, making a career change...",
				HelpText:    "Describe the situation or decision you are facing",
			},
			{
				Name:        "rawThoughts",
				Label:       "Raw Thoughts/Notes",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Paste your messy notes, ideas, or initial thoughts here...",
				HelpText:    "Any existing thoughts or notes to organize?",
			},
			{
				Name:     "timeHorizon",
				Label:    "Time Horizon",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Next 30 days",
					"Next 3 months",
					"Next 6 months",
					"Next year",
					"Long-term (2+ years)",
				},
				HelpText: "What timeframe are you planning for?",
			},
			{
				Name:        "stakeholders",
				Label:       "Key Stakeholders",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Team members, customers, investors, family...",
				HelpText:    "Who else is involved or affected?",
			},
		},
	},
	{
		ID:          "ad-copy",
		Name:        "Ad Copy Variations",
		Description: "Create platform-specific ad copy for Facebook, Google, YouTube with pain-point focus and hooks.",
		Icon:        "megaphone",
		Available:   true,
		Fields: []Field{
			{
				Name:     "platform",
				Label:    "Ad Platform",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Facebook Ad (pain-point focus)",
					"Google Ad (short & punchy)",
					"YouTube Ad (spoken hook)",
					"Instagram Story",
					"LinkedIn Sponsored",
					"Twitter/X Promoted",
					"TikTok Ad",
				},
				HelpText: "Choose the advertising platform",
			},
			{
				Name:        "product",
				Label:       "Product/Service",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "Project management software, online course, fitness app...",
				HelpText:    "What are you advertising?",
			},
			{
				Name:        "targetAudience",
				Label:       "Target Audience",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "Busy entrepreneurs, new parents, college students...",
				HelpText:    "Who is your ideal customer?",
			},
			{
				Name:        "painPoint",
				Label:       "Main Pain Point",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Struggling to stay organized, feeling overwhelmed by tasks...",
				HelpText:    "What problem does your product solve?",
			},
			{
				Name:        "benefit",
				Label:       "Key Benefit",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "Save 2 hours per day, lose 10 pounds in 30 days...",
				HelpText:    "What is the main benefit or outcome?",
			},
			{
				Name:     "callToAction",
				Label:    "Call to Action",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Sign up for free trial",
					"Download now",
					"Learn more",
					"Get started today",
					"Book a demo",
					"Buy now",
					"Join waitlist",
				},
				HelpText: "What action do you want people to take?",
			},
			{
				Name:        "urgency",
				Label:       "Urgency/Scarcity",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Limited time offer, only 100 spots available...",
				HelpText:    "Any urgency or scarcity elements?",
			},
		},
	},
	{
		ID:          "how-to-generator",
		Name:        "How-To Generator",
		Description: "Build clear how-to prompts with complexity sliders and format options (paragraphs, steps, bullets).",
		Icon:        "list-ordered",
		Available:   true,
		Fields: []Field{
			{
				Name:        "topic",
				Label:       "How-To Topic",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "How to start a podcast, How to fix a leaky faucet...",
				HelpText:    "What do you want to explain how to do?",
			},
			{
				Name:     "audience",
				Label:    "Audience Level",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Complete beginner",
					"Some experience",
					"Intermediate",
					"Advanced/Expert",
				},
				HelpText: "What is the skill level of your audience?",
			},
			{
				Name:     "format",
				Label:    "Format",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Numbered steps",
					"Bullet point list",
					"Paragraph format",
					"Visual guide (with descriptions)",
					"Quick reference card",
					"Detailed tutorial",
				},
				HelpText: "How should the instructions be formatted?",
			},
			{
				Name:     "timeframe",
				Label:    "Time to Complete",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"5 minutes or less",
					"15-30 minutes",
					"1 hour",
					"2-4 hours",
					"Multiple sessions",
					"Ongoing process",
				},
				HelpText: "How long should this take?",
			},
			{
				Name:        "tools",
				Label:       "Tools/Materials Needed",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Computer, microphone, recording software...",
				HelpText:    "What tools or materials are required?",
			},
			{
				Name:        "commonMistakes",
				Label:       "Common Mistakes to Avoid",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Not testing audio levels, forgetting to backup files...",
				HelpText:    "What pitfalls should people watch out for?",
			},
		},
	},
	{
		ID:          "roleplay-simulation",
		Name:        "Roleplay & AI Simulation",
		Description: "Simulate debates, interview historical figures, and play devil's advocate for business ideas.",
		Icon:        "users",
		Available:   true,
		Fields: []Field{
			{
				Name:     "simulationType",
				Label:    "Simulation Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Debate simulation",
					"Historical figure interview",
					"Devil's advocate session",
					"Expert consultation",
					"Customer interview",
					"Negotiation practice",
					"Public speaking practice",
					"Conflict resolution",
				},
				HelpText: "What type of roleplay scenario?",
			},
			{
				Name:        "topic",
				Label:       "Topic/Subject",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Climate change policy, my new business idea, marketing strategy...",
				HelpText:    "What is the main topic or subject?",
			},
			{
				Name:        "role",
				Label:       "Character/Role to Play",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Albert Einstein, skeptical investor, industry expert...",
				HelpText:    "Who should the AI roleplay as?",
			},
			{
				Name:     "perspective",
				Label:    "Perspective/Stance",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Supportive and encouraging",
					"Critical and challenging",
					"Neutral and analytical",
					"Enthusiastic advocate",
					"Skeptical questioner",
					"Practical advisor",
				},
				HelpText: "What perspective should they take?",
			},
			{
				Name:        "goals",
				Label:       "Learning Goals",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Test my arguments, find weak points, explore different viewpoints...",
				HelpText:    "What do you hope to learn or achieve?",
			},
			{
				Name:        "context",
				Label:       "Additional Context",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "This is for a school project, preparing for investor pitch...",
				HelpText:    "Any additional background or context?",
			},
		},
	},
	{
		ID:          "copy-editing",
		Name:        "Copy Editing & Rewriting",
		Description: "Improve tone, clarity, and flow. Rewrite in different voices and convert between formats.",
		Icon:        "edit",
		Available:   true,
		Fields: []Field{
			{
				Name:        "originalText",
				Label:       "Original Text",
				Kind:        FieldKindTextarea,
				Required:    true,
				Placeholder: "Paste the text you want to improve or rewrite...",
				HelpText:    "Provide the text that needs editing",
			},
			{
				Name:     "editingGoal",
				Label:    "Editing Goal",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Improve clarity and flow",
					"Change tone/voice",
					"Make more concise",
					"Make more detailed",
					"Fix grammar and style",
					"Convert format",
					"Improve readability",
					"Make more persuasive",
				},
				HelpText: "What type of editing do you need?",
			},
			{
				Name:     "targetTone",
				Label:    "Target Tone/Voice",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Professional/Formal",
					"Casual/Conversational",
					"Friendly/Warm",
					"Authoritative/Expert",
					"Persuasive/Sales",
					"Academic/Scholarly",
					"Empathetic/Supportive",
					"Confident/Bold",
				},
				HelpText: "What tone should the final version have?",
			},
			{
				Name:     "targetFormat",
				Label:    "Target Format",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Bullet points to paragraphs",
					"Paragraphs to bullet points",
					"Long form to summary",
					"Summary to detailed",
					"Email format",
					"Blog post format",
					"Social media post",
				},
				HelpText: "Convert to a different format?",
			},
			{
				Name:        "audience",
				Label:       "Target Audience",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Business executives, college students, general public...",
				HelpText:    "Who will read the final version?",
			},
			{
				Name:        "constraints",
				Label:       "Length/Style Constraints",
				Kind:        FieldKindText,
				Required:    false,
				Placeholder: "Keep under 200 words, include specific keywords...",
				HelpText:    "Any specific requirements or limitations?",
			},
		},
	},
	{
		ID:          "travel-planning",
		Name:        "Travel Planning",
		Description: "Create itineraries, budget travel checklists, and local dining recommendations for any destination.",
		Icon:        "map-pin",
		Available:   true,
		Fields: []Field{
			{
				Name:     "planningType",
				Label:    "Planning Type",
				Kind:     FieldKindSelect,
				Required: true,
				Options: []string{
					"Multi-day itinerary",
					"Budget travel checklist",
					"Local dining guide",
					"Transportation planning",
					"Accommodation recommendations",
					"Activity suggestions",
					"Packing checklist",
					"Cultural etiquette guide",
				},
				HelpText: "What type of travel planning help do you need?",
			},
			{
				Name:        "destination",
				Label:       "Destination",
				Kind:        FieldKindText,
				Required:    true,
				Placeholder: "Tokyo, Japan or Paris, France or San Francisco, CA...",
				HelpText:    "Where are you traveling to?",
			},
			{
				Name:     "duration",
				Label:    "Trip Duration",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Weekend (2-3 days)",
					"Short trip (4-6 days)",
					"Week long (7-9 days)",
					"Extended trip (10+ days)",
					"Day trip only",
				},
				HelpText: "How long is your trip?",
			},
			{
				Name:     "budget",
				Label:    "Budget Level",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Backpacker/Budget",
					"Mid-range/Moderate",
					"Luxury/High-end",
					"Mixed (budget conscious with splurges)",
				},
				HelpText: "What is your budget level?",
			},
			{
				Name:        "interests",
				Label:       "Interests/Preferences",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Museums, food tours, nightlife, nature, history, shopping...",
				HelpText:    "What are you most interested in?",
			},
			{
				Name:     "travelStyle",
				Label:    "Travel Style",
				Kind:     FieldKindSelect,
				Required: false,
				Options: []string{
					"Solo traveler",
					"Couple/romantic",
					"Family with kids",
					"Group of friends",
					"Business travel",
					"Adventure/active",
					"Relaxation/leisure",
				},
				HelpText: "What is your travel style?",
			},
			{
				Name:        "constraints",
				Label:       "Special Considerations",
				Kind:        FieldKindTextarea,
				Required:    false,
				Placeholder: "Dietary restrictions, mobility needs, first time visiting...",
				HelpText:    "Any special needs or constraints?",
			},
		},
	},
}
