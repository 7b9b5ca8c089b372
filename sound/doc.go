// Package sound plays a short system alert, typically at the end of a long
// training or evaluation run.
//
// The alert is an external player command pointed at a sound file that ships
// with the operating system:
//
//	darwin   afplay /System/Library/Sounds/Glass.aiff
//	linux    paplay /usr/share/sounds/freedesktop/stereo/complete.oga
//	windows  powershell Media.SoundPlayer on C:\Windows\Media\chimes.wav
//
// Play is fire-and-forget: the player is started and never waited on by the
// caller, and every failure is swallowed. Use (*Player).Play to see start
// errors, or build a Player by hand to use another command or file.
package sound
