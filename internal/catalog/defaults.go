package catalog

// Default is the registry shipped with scribo. It is built once at init.
var Default = mustRegistry(defaultTools()...)

func mustRegistry(configs ...ToolConfig) *Registry {
	r, err := NewRegistry(configs...)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return r
}

func defaultTools() []ToolConfig {
	return []ToolConfig{
		{
			Kind:          Script,
			Name:          "Script",
			Icon:          "📝",
			Description:   "Generate full scripts",
			DurationLabel: "Duration",
			Templates: []Template{
				{ID: "youtube-educational", Name: "YouTube Educational", Prompt: "Create an educational script for YouTube about [TOPIC] that is [DURATION] long, targeting [AUDIENCE]. Include an engaging hook, clear explanations, and a strong call-to-action."},
				{ID: "tiktok-viral", Name: "TikTok Viral", Prompt: "Write a viral TikTok script about [TOPIC] that is [DURATION] long for [AUDIENCE]. Make it trendy, engaging with hooks in first 3 seconds."},
				{ID: "instagram-reel", Name: "Instagram Reel", Prompt: "Create an Instagram Reel script about [TOPIC] that is [DURATION] long for [AUDIENCE]. Include trending music cues and visual directions."},
				{ID: "podcast-intro", Name: "Podcast Episode", Prompt: "Write a podcast episode script about [TOPIC] that is [DURATION] long, targeting [AUDIENCE]. Include intro, main content, and outro segments."},
			},
			Platforms: []string{"YouTube", "TikTok", "Instagram", "Podcast", "Facebook", "Twitter"},
			Durations: []string{"30 seconds", "1 minute", "3 minutes", "5 minutes", "10 minutes", "15+ minutes"},
			Audiences: []string{"General", "Teens (13-19)", "Young Adults (20-35)", "Adults (35-50)", "Seniors (50+)", "Business Professionals", "Students", "Parents"},
		},
		{
			Kind:          Title,
			Name:          "Titles",
			Icon:          "🎯",
			Description:   "Catchy, SEO-rich titles",
			DurationLabel: "Length",
			Templates: []Template{
				{ID: "youtube-seo", Name: "YouTube SEO Title", Prompt: "Create SEO-optimized YouTube titles about [TOPIC] for [AUDIENCE] on [PLATFORM]. Make them clickable but not clickbait, under 60 characters."},
				{ID: "blog-post", Name: "Blog Post Title", Prompt: "Generate compelling blog post titles about [TOPIC] targeting [AUDIENCE] for [PLATFORM]. Include numbers, power words, and SEO keywords."},
				{ID: "social-media", Name: "Social Media Title", Prompt: "Create attention-grabbing social media titles about [TOPIC] for [AUDIENCE] on [PLATFORM]. Make them shareable and engaging."},
				{ID: "email-subject", Name: "Email Subject Line", Prompt: "Write compelling email subject lines about [TOPIC] for [AUDIENCE]. Ensure high open rates and avoid spam triggers."},
			},
			Platforms: []string{"YouTube", "Blog", "Instagram", "TikTok", "LinkedIn", "Twitter", "Facebook", "Email"},
			Durations: []string{"Short (under 50 chars)", "Medium (50-70 chars)", "Long (70+ chars)"},
			Audiences: []string{"General Public", "Business Professionals", "Content Creators", "Students", "Tech Enthusiasts", "Health & Wellness", "Finance", "Entertainment"},
		},
		{
			Kind:          Caption,
			Name:          "Captions",
			Icon:          "💬",
			Description:   "Engaging captions",
			DurationLabel: "Length",
			Templates: []Template{
				{ID: "instagram-post", Name: "Instagram Post", Prompt: "Write an engaging Instagram caption about [TOPIC] for [AUDIENCE]. Include relevant emojis, hashtags, and a call-to-action. Length: [DURATION]."},
				{ID: "linkedin-professional", Name: "LinkedIn Professional", Prompt: "Create a professional LinkedIn caption about [TOPIC] for [AUDIENCE]. Make it thought-provoking and industry-relevant. Length: [DURATION]."},
				{ID: "facebook-casual", Name: "Facebook Casual", Prompt: "Write a casual, friendly Facebook caption about [TOPIC] for [AUDIENCE]. Encourage engagement and discussion. Length: [DURATION]."},
				{ID: "twitter-thread", Name: "Twitter Thread", Prompt: "Create a Twitter thread about [TOPIC] for [AUDIENCE]. Break it into digestible tweets with engaging hooks. Length: [DURATION]."},
			},
			Platforms: []string{"Instagram", "Facebook", "LinkedIn", "Twitter", "TikTok", "Pinterest", "YouTube Community"},
			Durations: []string{"Short (1-2 sentences)", "Medium (1 paragraph)", "Long (2+ paragraphs)", "Story format"},
			Audiences: []string{"Followers", "Business Network", "General Public", "Customers", "Community", "Industry Professionals", "Friends & Family"},
		},
		{
			Kind:          Hashtag,
			Name:          "Hashtags",
			Icon:          "#️⃣",
			Description:   "Trending hashtags",
			DurationLabel: "Quantity",
			Templates: []Template{
				{ID: "trending-mix", Name: "Trending Mix", Prompt: "Generate trending hashtags for [TOPIC] content on [PLATFORM] targeting [AUDIENCE]. Mix of [DURATION] - include popular, niche, and branded hashtags."},
				{ID: "niche-specific", Name: "Niche Specific", Prompt: "Create niche-specific hashtags for [TOPIC] on [PLATFORM] for [AUDIENCE]. Focus on [DURATION] highly targeted hashtags for better reach."},
				{ID: "viral-potential", Name: "Viral Potential", Prompt: "Generate hashtags with viral potential for [TOPIC] on [PLATFORM] targeting [AUDIENCE]. Include [DURATION] trending and emerging hashtags."},
				{ID: "brand-awareness", Name: "Brand Awareness", Prompt: "Create brand awareness hashtags for [TOPIC] on [PLATFORM] for [AUDIENCE]. Mix branded and community hashtags, [DURATION] total."},
			},
			Platforms: []string{"Instagram", "TikTok", "Twitter", "LinkedIn", "YouTube", "Pinterest", "Facebook"},
			Durations: []string{"5-10 hashtags", "10-15 hashtags", "15-20 hashtags", "20-30 hashtags"},
			Audiences: []string{"General", "Niche Community", "Business Audience", "Young Demographics", "Local Community", "Global Audience", "Industry Specific"},
		},
		{
			Kind:          Ideas,
			Name:          "Ideas",
			Icon:          "💡",
			Description:   "Fresh content ideas",
			DurationLabel: "Number",
			Templates: []Template{
				{ID: "content-series", Name: "Content Series", Prompt: "Generate content series ideas about [TOPIC] for [AUDIENCE] on [PLATFORM]. Create [DURATION] related content ideas that can be published over time."},
				{ID: "trending-topics", Name: "Trending Topics", Prompt: "Suggest trending content ideas about [TOPIC] for [AUDIENCE] on [PLATFORM]. Focus on [DURATION] that align with current trends and viral potential."},
				{ID: "educational-content", Name: "Educational Content", Prompt: "Create educational content ideas about [TOPIC] for [AUDIENCE] on [PLATFORM]. Generate [DURATION] that teach, inform, and provide value."},
				{ID: "behind-scenes", Name: "Behind the Scenes", Prompt: "Generate behind-the-scenes content ideas about [TOPIC] for [AUDIENCE] on [PLATFORM]. Create [DURATION] that show process, journey, and authentic moments."},
			},
			Platforms: []string{"YouTube", "Instagram", "TikTok", "Blog", "Podcast", "LinkedIn", "Twitter", "Pinterest"},
			Durations: []string{"5 ideas", "10 ideas", "15 ideas", "20+ ideas"},
			Audiences: []string{"Content Creators", "Business Owners", "Influencers", "Marketers", "Educators", "Entrepreneurs", "General Creators", "Niche Communities"},
		},
	}
}
