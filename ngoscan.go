// Package ngoscan extracts structured contact records (organization
// name, address, services, contact person, phone numbers) from the web
// pages of NGOs, driven by a per-organization declarative rule set
// rather than hand-written per-site parsers.
//
// This package contains domain types, interfaces, and the pure rule
// resolution engine following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, yaml/, excelize/).
package ngoscan
