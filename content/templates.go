package content

// Prebuilt post skeletons for the recurring shapes of hand-authored posts.
// Each returns a live builder so callers keep chaining.

// TutorialTemplate opens a technical walkthrough post.
func TutorialTemplate(description string) *Builder {
	return NewBuilder().
		Hero(description).
		Heading("Overview").
		Text("This tutorial will guide you through...").
		Heading("Prerequisites").
		List([]string{"Basic knowledge of...", "Familiarity with..."}, false).
		Separator(SeparatorLine).
		Heading("Getting Started")
}

// ShowcaseTemplate opens a project showcase post around a demo link.
func ShowcaseTemplate(description, demoURL string) *Builder {
	return NewBuilder().
		Hero(description).
		Heading("Project Overview").
		Embed(demoURL,
			WithEmbedTitle("Demo"),
			WithEmbedDescription("View the demo"),
			WithEmbedProvider("Vercel"),
		).
		Text("In this post, I'll walk you through...").
		Metrics([]MetricItem{
			{Label: "Development Time", Value: "2 weeks"},
			{Label: "Technologies", Value: "5"},
			{Label: "Features", Value: "12"},
		}).
		Separator(SeparatorLine)
}

// LearningLogTemplate opens a retrospective learning-log post.
func LearningLogTemplate(description string) *Builder {
	return NewBuilder().
		Hero(description).
		Heading("What I Learned").
		Text("Key takeaways from this experience...").
		Timeline([]TimelineItem{
			{Time: "Week 1", Title: "Discovery", Description: "Initial exploration and setup"},
			{Time: "Week 2", Title: "Implementation", Description: "Building the core features"},
			{Time: "Week 3", Title: "Optimization", Description: "Performance improvements and testing"},
		}).
		Separator(SeparatorLine)
}
