// Package nucleus defines the particle-level types shared by the
// interaction engines and the propagation loop:
//
//   - [Nuclide]: structured (A, Z) identity with rest energy
//   - [Particle]: a nuclide carrying a total energy
//   - [Candidate]: a propagating particle owning redshift, activity
//     state, named pending interactions and emitted secondaries
//   - [Emission]: a disintegration channel decoded from its wire code
//
// Channel codes pack six emission counts into fixed decimal digit
// positions (neutrons in the 100000s place down to helium-4 in the
// ones place). [DecodeChannel] is the only place this protocol is
// interpreted; everything downstream works with the decoded record.
package nucleus
