// Package auth is the credential-issuance and verification core of the
// airline management service: it registers accounts, authenticates them
// against stored bcrypt hashes, issues signed bearer tokens, validates
// sessions, and answers role-membership queries.
//
// Tokens are stateless:
//   - The service keeps no record of issued tokens. A token is accepted only
//     while its HMAC signature verifies, its expiry has not elapsed, and the
//     subject account still exists. Deleting an account is the only way to
//     revoke a still-unexpired token, and that revocation is detected lazily
//     by SessionValidator on the next CheckSession call.
//
// Storage:
//   - The core reaches persistence only through the CredentialStore contract.
//     A Bun-backed implementation lives in this package (AccountsRepository,
//     RepositoryManager); tests substitute mocks. Store failures are
//     normalized into the package error taxonomy and never leak driver error
//     shapes upward.
package auth
