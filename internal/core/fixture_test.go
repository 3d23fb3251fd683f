package core

func strPtr(s string) *string {
	return &s
}

func sampleContent() Content {
	return Content{
		Meta: Meta{Title: "Jane Doe", Description: "Generative AI engineer"},
		Hero: Hero{
			Title:     "Generative AI Engineer",
			Subtitle:  "I build intelligent systems with LLMs.",
			AvatarRef: "/photo.jpg",
			Actions: []ActionSpec{
				NewActionSpec("Connect on LinkedIn", strPtr("https://www.linkedin.com/in/jane"), VariantOutline),
				NewActionSpec("Contact Me", strPtr("mailto:foo@example.com"), VariantPrimary),
			},
		},
		Skills: []Skill{
			{Name: "Python", IconRef: "icon://python"},
			{Name: "Go", IconRef: "icon://go"},
			{Name: "Docker", IconRef: "icon://docker"},
		},
		Projects: []Project{
			{
				Title:       "ChatUrPDF",
				Description: "Chat with a PDF using RAG.",
				ImageRef:    "/chat.png",
				Bullets:     []string{"LangChain + FastAPI backend", "pgvector for similarity search"},
				Actions: []ActionSpec{
					NewActionSpec("GitHub", strPtr("https://github.com/jane/chat"), VariantPrimary),
					NewActionSpec("Demo", strPtr("https://loom.com/share/1"), VariantOutline),
				},
			},
			{
				Title:       "RFQ Agent",
				Description: "Drafts emails with an LLM agent.",
				ImageRef:    "/rfq.png",
				Bullets:     []string{"Google OAuth"},
			},
		},
		Offerings: []Offering{
			{Title: "Automation", IconRef: "icon://auto", Bullets: []string{"n8n", "CrewAI"}},
			{Title: "Deployments", IconRef: "icon://cloud", Bullets: []string{"Azure"}},
		},
		Contact: Contact{
			Email: "jane@example.com",
			Actions: []ActionSpec{
				NewActionSpec("LinkedIn", strPtr("https://www.linkedin.com/in/jane"), VariantOutline),
			},
		},
	}
}
