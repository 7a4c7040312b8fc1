package repositories

import (
	"lumo/internal/models/store_models"
)

// The ten quiz steps, in order. Step 10 is the only one without a follow-up.
var quizSteps = []store_models.QuizStep{
	{
		Step: 1,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/1",
			HasNext:  true,
			Prompt:   "You're walking with no destination. What's the weather like?",
			Options: []store_models.StepOption{
				{ImgURL: "https://lumoagentinloop.s3.us-east-1.amazonaws.com/Terracotta+red+door+in+a+barren+land.jpg", Name: "Crisp and misty"},
				{ImgURL: "/api/placeholder/2", Name: "Dry heat with a golden sun"},
				{ImgURL: "/api/placeholder/3", Name: "A cozy drizzle"},
				{ImgURL: "/api/placeholder/4", Name: "Warm, breezy night air"},
			},
		},
	},
	{
		Step: 2,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/2",
			HasNext:  true,
			Prompt:   "You come across a door in the middle of nowhere. What color is it?",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "Emerald green"},
				{ImgURL: "/api/placeholder/2", Name: "Terracotta red"},
				{ImgURL: "/api/placeholder/3", Name: "Ocean blue"},
				{ImgURL: "/api/placeholder/4", Name: "Matte black"},
			},
		},
	},
	{
		Step: 3,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/3",
			HasNext:  true,
			Prompt:   "You step through and hear...",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "Waves crashing"},
				{ImgURL: "/api/placeholder/2", Name: "Distant music and laughter"},
				{ImgURL: "/api/placeholder/3", Name: "Wind moving through trees"},
				{ImgURL: "/api/placeholder/4", Name: "Silence"},
			},
		},
	},
	{
		Step: 4,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/4",
			HasNext:  true,
			Prompt:   "A stranger hands you something for your journey. What is it?",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "A hand-drawn map"},
				{ImgURL: "/api/placeholder/2", Name: "A polaroid camera"},
				{ImgURL: "/api/placeholder/3", Name: "A playlist"},
				{ImgURL: "/api/placeholder/4", Name: "A warm drink in a thermos"},
			},
		},
	},
	{
		Step: 5,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/5",
			HasNext:  true,
			Prompt:   "You're suddenly hungry. What's the first thing you crave?",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "Fresh fruit, just picked"},
				{ImgURL: "/api/placeholder/2", Name: "Street food in a paper wrapper"},
				{ImgURL: "/api/placeholder/3", Name: "Something hot from a local café"},
				{ImgURL: "/api/placeholder/4", Name: "A full-course meal shared at a long table"},
			},
		},
	},
	{
		Step: 6,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/6",
			HasNext:  true,
			Prompt:   "You're invited to join a group. You…",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "Jump in — the more the merrier"},
				{ImgURL: "/api/placeholder/2", Name: "Join for a bit, then wander solo"},
				{ImgURL: "/api/placeholder/3", Name: "Politely decline and keep exploring"},
				{ImgURL: "/api/placeholder/4", Name: "Stay nearby, watching from a distance"},
			},
		},
	},
	{
		Step: 7,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/7",
			HasNext:  true,
			Prompt:   "As night falls, you find the perfect spot to rest. What surrounds you?",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "A quiet cabin under stars"},
				{ImgURL: "/api/placeholder/2", Name: "Rooftop views of a glowing city"},
				{ImgURL: "/api/placeholder/3", Name: "A hammock between two palm trees"},
				{ImgURL: "/api/placeholder/4", Name: "A cozy inn with candles and books"},
			},
		},
	},
	{
		Step: 8,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/8",
			HasNext:  true,
			Prompt:   "The sky lights up with color. You realize you're...",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "On top of a mountain"},
				{ImgURL: "/api/placeholder/2", Name: "In the middle of a festival"},
				{ImgURL: "/api/placeholder/3", Name: "Floating on water"},
				{ImgURL: "/api/placeholder/4", Name: "Alone, smiling"},
			},
		},
	},
	{
		Step: 9,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/9",
			HasNext:  true,
			Prompt:   "You wake up in a new place. What do you reach for first?",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "A guidebook"},
				{ImgURL: "/api/placeholder/2", Name: "Your camera"},
				{ImgURL: "/api/placeholder/3", Name: "A fresh outfit"},
				{ImgURL: "/api/placeholder/4", Name: "Nothing — you take it all in"},
			},
		},
	},
	{
		Step: 10,
		Data: store_models.StepData{
			BgImgURL: "/api/placeholder/bg/10",
			HasNext:  false,
			Prompt:   "A whisper asks: \"Want to stay a little longer?\" You…",
			Options: []store_models.StepOption{
				{ImgURL: "/api/placeholder/1", Name: "Say yes before they finish the sentence"},
				{ImgURL: "/api/placeholder/2", Name: "Ask what's next"},
				{ImgURL: "/api/placeholder/3", Name: "Say, \"Only if I can bring someone with me\""},
				{ImgURL: "/api/placeholder/4", Name: "Smile and walk toward the next dream"},
			},
		},
	},
}
