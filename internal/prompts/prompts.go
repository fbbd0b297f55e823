// Package prompts renders briefs and creator styles into LLM prompt text.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zprintln/AdMaxxer-Project/internal/models"
)

// StoryboardSystemPrompt is sent as the system message of every storyboard call.
const StoryboardSystemPrompt = "You are an expert AI creative director specializing in social media sponsored content. " +
	"You generate authentic, engaging storyboards that balance brand requirements with creator authenticity. " +
	"Always return valid JSON only."

// CreatorAnalystSystemPrompt is the system message of creator style analysis.
const CreatorAnalystSystemPrompt = "You are a social media analyst who profiles creators for brand partnerships. " +
	"Always return valid JSON only."

// StoryboardPrompt asks for a 4-6 scene storyboard as a bare JSON array.
func StoryboardPrompt(brief models.StructuredBrief, style models.CreatorStyle) string {
	var sb strings.Builder

	platform := nonEmpty(brief.PlatformSpecs.Platform, models.DefaultPlatform)
	duration := nonEmpty(brief.Duration, models.DefaultDuration)

	sb.WriteString("You are an AI creative director for social media sponsored content.\n")
	fmt.Fprintf(&sb, "Your task is to generate a compelling, authentic storyboard for a sponsored %s video.\n\n", platform)

	sb.WriteString("CREATOR STYLE PROFILE:\n")
	sb.WriteString(prettyJSON(style))
	sb.WriteString("\n\nBRAND BRIEF (Structured):\n")
	sb.WriteString(prettyJSON(brief))
	sb.WriteString("\n\n")

	sb.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "1. Generate 4-6 scenes for a %s %s video\n", duration, platform)
	sb.WriteString("2. Each scene must feel authentic to the creator's style while meeting brand requirements\n")
	fmt.Fprintf(&sb, "3. Include all mandatory talking points: %s\n", joinOr(brief.TalkingPoints, "N/A"))
	fmt.Fprintf(&sb, "4. Incorporate required hashtags: %s\n", joinOr(brief.Hashtags, "N/A"))
	fmt.Fprintf(&sb, "5. Follow all restrictions: %s\n", joinOr(brief.Restrictions, "None specified"))
	sb.WriteString("6. Ensure product placement feels natural, not forced\n\n")

	sb.WriteString("OUTPUT FORMAT:\n")
	sb.WriteString("Return ONLY a valid JSON array. Do not include any explanatory text before or after the JSON.\n\n")
	sb.WriteString(sceneArrayExample)
	sb.WriteString("\n\n")

	sb.WriteString("CREATIVE DIRECTION:\n")
	sb.WriteString("- Hook viewers in the first 3 seconds (scene 1 must be attention-grabbing)\n")
	fmt.Fprintf(&sb, "- Match the creator's typical content format (%s)\n", nonEmpty(style.ContentFormat, "vlog-style"))
	fmt.Fprintf(&sb, "- Use the creator's tone of voice (%s)\n", nonEmpty(style.Tone, "casual and authentic"))
	sb.WriteString("- Make brand integration feel like a natural recommendation, not an ad\n")
	if brief.CallToAction != "" {
		fmt.Fprintf(&sb, "- End with a clear call-to-action (%s) that aligns with %s's goals\n", brief.CallToAction, brief.BrandName)
	} else {
		fmt.Fprintf(&sb, "- End with a clear call-to-action that aligns with %s's goals\n", brief.BrandName)
	}
	sb.WriteString("\nGenerate the storyboard now:")

	return sb.String()
}

// RegenerateScenePrompt asks for a single replacement scene as a bare JSON object.
func RegenerateScenePrompt(sceneNumber int, current models.Scene, brief models.StructuredBrief, style models.CreatorStyle, feedback string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are regenerating scene %d of a sponsored content storyboard.\n\n", sceneNumber)
	sb.WriteString("CURRENT SCENE:\n")
	sb.WriteString(prettyJSON(current))
	fmt.Fprintf(&sb, "\n\nUSER FEEDBACK: %q\n\n", feedback)
	sb.WriteString("CREATOR STYLE:\n")
	sb.WriteString(prettyJSON(style))
	sb.WriteString("\n\nBRAND REQUIREMENTS:\n")
	sb.WriteString(prettyJSON(brief))
	sb.WriteString("\n\n")

	sb.WriteString("Generate an improved version of this scene that addresses the feedback while maintaining:\n")
	sb.WriteString("- Authenticity to creator's style\n")
	sb.WriteString("- Compliance with brand requirements\n")
	sb.WriteString("- Natural flow with surrounding scenes\n\n")

	sb.WriteString("Return ONLY valid JSON for the single scene:\n")
	fmt.Fprintf(&sb, "{\n  \"scene\": %d,\n  \"duration\": \"5s\",\n  \"visual\": \"...\",\n  \"script\": \"...\",\n  \"notes\": \"...\"\n}", sceneNumber)

	return sb.String()
}

// EnhanceVisualDescriptionPrompt asks the LLM to turn a scene description into an image prompt.
func EnhanceVisualDescriptionPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString("Convert this scene description into a detailed visual prompt for AI image/video generation:\n\n")
	fmt.Fprintf(&sb, "Original: %q\n\n", description)
	sb.WriteString("Create a detailed prompt that includes:\n")
	sb.WriteString("- Specific visual composition (camera angle, framing, lighting)\n")
	sb.WriteString("- Color palette and aesthetic style\n")
	sb.WriteString("- Key visual elements and their placement\n")
	sb.WriteString("- Mood and atmosphere\n")
	sb.WriteString("- Any text overlays or graphics\n\n")
	sb.WriteString("Return a single detailed paragraph (2-3 sentences max) optimized for AI image generation.")

	return sb.String()
}

// AnalyzeCreatorStylePrompt asks for a creator style profile as a JSON object.
func AnalyzeCreatorStylePrompt(handle string) string {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")

	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the Instagram profile @%s and create a style profile for sponsored content creation.\n\n", handle)
	sb.WriteString("Return ONLY a JSON object with:\n")
	sb.WriteString(styleObjectExample)
	return sb.String()
}

const sceneArrayExample = `[
  {
    "scene": 1,
    "duration": "5s",
    "visual": "detailed description of what viewers see on screen",
    "script": "exact words the creator says in this scene",
    "notes": "which brand requirement this scene fulfills (e.g., 'mentions product benefit X', 'shows product in use')"
  },
  ...
]`

const styleObjectExample = `{
  "contentFormat": "typical video format (e.g., 'talking head vlog', 'product demo', 'lifestyle montage')",
  "tone": "communication style (e.g., 'energetic and enthusiastic', 'calm and informative', 'humorous')",
  "aestheticTags": ["tag1", "tag2", "tag3"],
  "typicalDuration": "average video length",
  "commonThemes": ["theme1", "theme2"],
  "uniqueHook": "what makes this creator's content distinctive"
}`

func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
