// Package poemservice contains the poem publishing module: recent poem
// listings, tenant lookup by subdomain, poem creation and view counting.
//
// Domain/application logic stays decoupled from runtime concerns through
// ports and adapter composition.
package poemservice
