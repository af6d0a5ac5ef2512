package loaders

import "github.com/sandipbaste/My-Portfolio/internal/core/domain"

// DefaultProfile returns the built-in profile record. It is the lowest
// loader tier and the directory behind the social-navigation handler, so
// it must always be available in-binary.
func DefaultProfile() *domain.Profile {
	return &domain.Profile{
		Name:     "Sandip Baste",
		Headline: "AI/ML Developer",
		About: domain.About{
			Journey: "I'm a passionate AI/ML developer with a strong specialization in Generative AI and Large Language Models, " +
				"honed through my Master's in Computer Science and hands-on internship experience. My background in building " +
				"intelligent chatbots, voice assistants, and video insight systems allows me to create scalable, real-time AI " +
				"solutions that enhance user engagement and efficiency.",
			WhatIDo: []string{
				"AI-Powered Chatbot Development",
				"Voice Assistant Integration",
				"Real-Time API Backend Development",
				"Video Insight Extraction Systems",
			},
			Belief: "I believe in the power of context-aware interactions and data-driven pipelines. Every embedding, " +
				"retriever, and API integration serves a purpose in delivering accurate and meaningful AI experiences.",
		},
		Skills: []string{
			"Python", "LangChain", "LangGraph", "FastAPI",
			"RAG", "Agentic AI", "NLP", "ReactJS", "Tailwind CSS",
			"MongoDB", "MySQL", "Docker", "AWS", "Git", "GitHub",
		},
		Projects: []domain.Project{
			{
				Title: "WhatsApp Chatbot",
				Description: "AI-powered WhatsApp chatbot with Python, Gemini API, PyAutoGUI, and Pyperclip, enabling " +
					"automated, human-like, and context-aware conversations with typing effects and loop-prevention.",
				Tech: []string{"Python", "LLM", "PyAutoGUI", "Pyperclip"},
				Link: "https://github.com/sandipbaste/WhatsApp-AI-Chatbot",
			},
			{
				Title: "Nora - AI Voice Assistant",
				Description: "AI-powered voice assistant with Python, Gemini API, SpeechRecognition, pyttsx3, ReactJS, and " +
					"Tailwind CSS, featuring context-aware dialogue, voice input, TTS output, and real-time features like " +
					"web search, music playback, and news updates.",
				Tech: []string{"Python", "React", "LLM", "gTTS/pyttsx3", "Speech Recognition"},
				Link: "https://github.com/sandipbaste",
			},
			{
				Title: "Video Insighter",
				Description: "Video insight system with Python, FFmpeg, Faster-Whisper, FastAPI, and Gemini API, extracting " +
					"audio, transcribing, and processing queries for quick retrieval of context-specific insights from " +
					"large video files.",
				Tech: []string{"Python", "LangChain", "FastAPI", "LLM", "FFmpeg", "Whisper"},
				Link: "https://github.com/sandipbaste/Video-Insight-Extractor-",
			},
		},
		Contact: domain.Contact{
			Email:     "sandipbaste999@gmail.com",
			Phone:     "+91 9767952471",
			Location:  "Nashik, Maharashtra, India",
			Github:    "https://github.com/sandipbaste",
			Linkedin:  "https://www.linkedin.com/in/sandipbaste999",
			Instagram: "https://www.instagram.com/sandipbaste",
			Facebook:  "https://www.facebook.com/sandipbaste",
			Twitter:   "https://twitter.com/sandipbaste",
			Portfolio: "https://sandipbaste.netlify.app",
		},
		Education: []domain.EducationEntry{
			{Degree: "M.Sc. (Computer Science)", Institution: "K.K. Wagh College", Grade: "CGPA: 7.91"},
			{Degree: "B.Sc. (Computer Science)", Institution: "K.K. Wagh College", Grade: "CGPA: 8.27"},
		},
		Experience: []domain.ExperienceEntry{
			{
				Role:        "AI/ML Developer",
				Description: "Specializing in Generative AI and Large Language Models; building chatbots, voice assistants, and AI agents.",
			},
			{
				Role:        "AI/ML Intern",
				Description: "Hands-on internship experience building RAG systems and real-time API backends with Python, LangChain, and FastAPI.",
			},
		},
	}
}

// fallbackText is the guaranteed-available lowest tier of the corpus.
const fallbackText = `Sandip Baste - AI/ML Developer

Professional Experience:
- AI/ML Developer specializing in Generative AI and Large Language Models
- Experience in building chatbots, voice assistants, and AI agents
- Proficient in Python, LangChain, FastAPI, and RAG systems

Skills:
- Python, LangChain, FastAPI, RAG, Agentic AI
- ReactJS, Tailwind CSS, MongoDB, Docker, AWS
- LLM Integration, NLP, Machine Learning

Projects:
- WhatsApp AI Chatbot with Gemini API
- Nora - AI Voice Assistant
- Video Insight Extractor System

Education:
- Master of Computer Science`
