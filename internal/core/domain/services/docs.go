// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the production pipeline. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StationRouter: decides the next production station for an order from
//     its category, machine assignment and station log
//   - WasteCalculator: pure waste and fire-percentage math shared by the
//     warehouse and production stages
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
