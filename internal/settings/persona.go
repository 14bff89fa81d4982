package settings

// Senior health persona: Dr. Robert Mitchell.
const (
	DefaultCharacterName = "Dr. Robert Mitchell"

	DefaultStyle = `professional medical setting, soft diffused key light from 45-degree angle, minimal depth of field with blurred clinical background (shelves with medical books and certificates), natural warm skin tones with high saturation, clean modern aesthetic, subtle texture without grain, HIGH CONTRAST for visibility (dark text on light backgrounds), stable smooth camera movements only, no handheld shaking, soft vignette to focus attention, warm color temperature 5000K`

	DefaultCharacterLock = `Male, 55 years old exactly, Caucasian American ethnicity. FACE: fair skin tone (Fitzpatrick Type II) with warm peachy undertones, natural age-appropriate fine lines and crow's feet around eyes (depth 2-3mm), visible forehead wrinkles when raising eyebrows, subtle nasolabial folds, defined square jawline with slight jowl softening natural for age 55, no beard or mustache - completely clean-shaven smooth face, small subtle age spots on temples. EYES: bright blue-gray eyes (iris color #4682B4), rectangular wire-frame reading glasses with silver metal frames and anti-reflective coating positioned mid-bridge of nose, warm engaging direct gaze into camera, expressive thick gray eyebrows that lift naturally when emphasizing important points. HAIR: salt-and-pepper hair in 70% silver-gray / 30% dark brown ratio, short professional businessman cut 2-3 inches on top with neat side part on left, sides trimmed to 1 inch, slight wave texture, well-groomed and styled with light product, hairline slightly receded at temples (Norwood Type II). BUILD: athletic fit physique, 5 feet 11 inches tall (180cm), approximately 175 pounds (79kg), upright confident posture with shoulders back, medium frame with visible muscle definition suggesting regular exercise routine. CLOTHING: pristine white medical laboratory coat (knee-length 40 inches, tailored European fit, 100% cotton, pressed with sharp creases), left chest embroidered with "Dr. R. Mitchell, MD" in navy blue thread (12pt font), "Health & Nutrition Specialist" embroidered below in 10pt font, underneath wearing light blue Oxford button-down dress shirt (no tie, top button undone for approachable look), dark navy blue dress slacks with belt. ACCESSORIES: professional hospital ID badge clipped to left coat pocket showing photo and credentials, classic silver analog wristwatch on left wrist (thin band, white face, Roman numerals), simple gold wedding band on left ring finger, black leather dress shoes. MANNERISMS: warm genuine smile revealing straight white teeth, natural hand gestures when explaining (palms up for openness, pointing index finger for emphasis), occasional head tilts showing empathy and active listening, slight forward lean when delivering important information showing engagement. OVERALL IMPRESSION: trustworthy experienced healthcare provider with 25+ years clinical practice appearance, combines professional medical authority with warm approachable bedside manner, radiates competence and compassion simultaneously`

	DefaultVoiceNote = `CRITICAL: VEO3 must use NATIVE AUDIO generation only. DO NOT use external TTS. Generate voice with these exact parameters: Male voice, mature professional tone, 55-year-old American physician quality. Voice characteristics: calm, reassuring, trustworthy, warm fatherly authoritative tone suggesting 25+ years medical experience. Accent: Standard American English with neutral General American accent (no regional markers, Midwest broadcast quality). PACE: SLOW at 110-120 words per minute (significantly slower than normal 150 wpm for senior comprehension). Enunciation: excellent clear articulation with slight emphasis on medical/health terminology. Natural pauses: insert 0.7-1.0 second pauses after important health facts, 0.5 second pauses after questions, 1.5 second pauses before major topic transitions. Delivery style: steady measured cadence without rushing, professional yet conversational like a caring family doctor explaining diagnosis to elderly patient, slight pitch uptick (+10% fundamental frequency) for encouragement and emphasis on positive health outcomes. Emotional tone: compassionate, patient, never condescending, builds trust through vocal warmth. Vocal quality: clear resonant voice without breathiness, slight chest voice for authority, warm smile audible in voice. Reference voice style: similar to "Sadaltager" (knowledgeable) or "Achird" (friendly) or "Charon" (informative) from Gemini TTS voice library but generated natively by VEO3`

	DefaultMusicMood = `gentle solo piano with very soft acoustic cello accompaniment, warm and hopeful emotional tone without being distracting, extremely subtle at -20dB under dialogue (NOT -18dB), very slow tempo 55-65 BPM, simple melodic lines in major keys (C major or G major for warmth), no sudden dynamic changes or jarring chord progressions, smooth legato playing style, calming reassuring atmosphere that reduces anxiety, fade in slowly over 3 seconds at clip start, fade out over 2 seconds at clip end, maintain consistent volume throughout`

	DefaultSFXPack = `absolutely minimal sound effects prioritizing dialogue clarity above all. ONLY use: (1) gentle page turn sound at -16dB for major section transitions (occurring max once per 8s clip if needed), (2) very subtle light whoosh at -18dB for smooth scene changes (short 0.3s duration), (3) soft warm riser at -17dB ONLY before the 6 main hooks to create anticipation (1.5s duration, frequency range 80-200Hz for non-startling bass), (4) NO other SFX - no pops, clicks, hits, or jarring sounds that might startle elderly viewers. ALL effects must be warm analog quality not digital/synthetic. Keep all SFX at least -15dB below dialogue. ABSOLUTE PRIORITY: voice intelligibility and clarity - if any SFX interferes with dialogue comprehension, remove it completely. Senior hearing loss is typically in 2000-8000Hz range so avoid high-frequency SFX`
)

var voicePresets = map[string]string{
	"sadaltager": `CRITICAL: VEO3 native audio only. Voice style: Sadaltager-like (knowledgeable expert). Male 55yo physician, calm authoritative, warm professional. Pace: 110-120 wpm (slow for seniors). American English, clear enunciation, natural pauses 0.7-1.0s after key points. Fatherly reassuring tone, compassionate never condescending.`,
	"achird":     `CRITICAL: VEO3 native audio only. Voice style: Achird-like (friendly approachable). Male 55yo doctor, warm conversational, friendly bedside manner. Pace: 110-120 wpm (slow for seniors). American English, excellent articulation, pauses 0.7-1.0s after important facts. Builds trust through vocal warmth.`,
	"charon":     `CRITICAL: VEO3 native audio only. Voice style: Charon-like (informative clear). Male 55yo medical professional, clear educational tone, informative delivery. Pace: 110-120 wpm (slow for seniors). American English, precise enunciation, pauses 0.7-1.0s after health terminology. Professional yet accessible.`,
}
