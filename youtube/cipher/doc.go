/*
Package cipher derives and runs YouTube signature transform plans.

The package never executes player.js. It extracts the transform algorithm by
structural pattern matching over the script text and compiles it into an
ordered plan of primitive array operations, which a pure interpreter then
applies to encrypted signatures.

# Architecture

Derivation runs once per player script version, inside NewSession:

 1. Function location
    - Ordered rule table of known call-site shapes (.sig|| guard,
      encodeURIComponent setter guards, split/join definition)
    - Built-in identifiers are never accepted as candidates
    - A candidate must have a definition site in the script

 2. Transform object location
    - Balanced-brace extraction of the transform function body
    - First obj.method(x, n) call names the transform object

 3. Plan derivation
    - Every obj.method(x, n) call is collected in source order
    - Each method of the transform object is classified by body text:
      reverse, splice, or swap (the fallback bucket)
    - Calls without a classified method are skipped
    - An empty plan is a build failure, never a valid session

 4. Interpretation
    - Plan.Apply treats the signature as a character array
    - splice drops are clamped, swap indexes are taken mod length

# Usage

	sess, err := cipher.NewSession(playerURL, scriptText)
	if err != nil {
		return err
	}
	mediaURL, err := sess.Resolve(rawCipherBlob)

# Error Codes

  - FUNCTION_NOT_FOUND: no accepted transform-function candidate
  - TRANSFORM_OBJECT_NOT_FOUND: no qualifying call or object literal
  - FUNCTION_BODY_UNPARSABLE: brace extraction failed or plan came up empty
  - CIPHER_DATA_INVALID: malformed parameter blob
  - SESSION_NOT_INITIALIZED: resolve on a nil session

Derivation failures mean the platform's obfuscation has shifted beyond the
known patterns. Retrying with the same script text fails identically; callers
should alert instead.

# Thread Safety

A Session is immutable after NewSession returns. Decipher and Resolve share
no mutable state and may run concurrently on one Session.

# Dependencies

  - github.com/dlclark/regexp2: locator rules that need backreferences
  - github.com/dop251/goja: parse-only syntax validation of extracted bodies
*/
package cipher
