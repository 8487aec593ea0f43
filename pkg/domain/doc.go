// Package domain contains the business entities of the agency: companies,
// the persons affiliated with them, the properties those persons own, the
// listings published for those properties, and the accounts persons log in
// with. Entities validate their own invariants on construction and on every
// mutation; they carry no persistence concerns.
package domain
