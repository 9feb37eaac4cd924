// Package order contains the manufacturing order aggregate and its value objects.
//
// An Order moves through the production pipeline as a state machine:
//
//	GraphicsPending -> WarehouseMaterialPending -> (WarehouseProcessing <->) PlanningPending
//	    -> Planned -> ProductionStarted -> ShippingReady <-> Completed
//
// Each department's submit action is a guarded transition on the aggregate.
// The aggregate owns the order's graphics spec, material plan, production
// schedule and the append-only station log, and keeps the station log
// consistent with the order status at all times.
//
// Station definitions (which stations exist, for which category, which one is
// terminal) also live here so that both the aggregate and the routing domain
// service share a single table.
package order
