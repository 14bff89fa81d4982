package prompts

import (
	"fmt"
	"strings"
)

// ClipDuration is fixed per clip; it is not derived from the word count.
const ClipDuration = "8s"

// Arguments: 1 progress, 2 character name, 3 character lock, 4 dialogue,
// 5 shot instruction, 6 style, 7 voice, 8 music, 9 sfx, 10 aspect,
// 11 resolution, 12 duration.
const VeoCommandTemplate = `
veo3 generate --prompt """
**VIDEO PROMPT**
**Clip Progress:** %[1]s
**Character:** %[2]s. CONSISTENCY LOCK: %[3]s
**Action & Dialogue:** %[2]s says, "%[4]s"
**Shot Type & Direction:** %[5]s
**Global Visual Style:** %[6]s

**AUDIO PROMPT (VEO3 NATIVE AUDIO GENERATION)**
**Dialogue:** "%[4]s"
**Voice Instructions:** %[7]s
**Background Music:** %[8]s
**Sound Effects:** %[9]s
"""
--aspect_ratio %[10]s
--resolution %[11]s
--duration %[12]s
--native_audio
`

const (
	OpeningShot = "SCENE START: Medium close-up shot (MCU) of the doctor from the waist up, centered in frame, looking directly into the camera with a warm, welcoming expression. The shot is stable, on a tripod. Start with a 1-second pause before he begins speaking."

	TransitionShot = "TRANSITION: Smooth, slow 1-second cross-dissolve to a slightly different angle. Now a medium shot (MS), showing the doctor from the hips up. He continues to speak directly to the camera. Maintain eye contact."

	ClosingShot = "SCENE END: Hold on a close-up shot of the doctor smiling warmly for 2 seconds after he finishes speaking. Slow 2-second fade to black."

	ContinuationShot = "CONTINUATION: Maintain the current shot. The doctor continues his delivery with natural, subtle hand gestures and empathetic facial expressions. Ensure seamless continuity from the previous clip."
)

type CommandFields struct {
	Progress      string
	CharacterName string
	CharacterLock string
	Dialogue      string
	Shot          string
	Style         string
	VoiceNote     string
	MusicMood     string
	SFXPack       string
	Aspect        string
	Resolution    string
}

func VeoCommand(f CommandFields) string {
	return strings.TrimSpace(fmt.Sprintf(VeoCommandTemplate,
		f.Progress,
		f.CharacterName,
		f.CharacterLock,
		f.Dialogue,
		f.Shot,
		f.Style,
		f.VoiceNote,
		f.MusicMood,
		f.SFXPack,
		f.Aspect,
		f.Resolution,
		ClipDuration,
	))
}
