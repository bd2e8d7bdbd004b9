package engine

import (
	"fmt"
	"time"

	"github.com/iliyamo/restaurant-ops/internal/model"
)

// Transition applies one action to the state and returns the next full
// snapshot.  The function is pure and total: it never mutates its input,
// never blocks, and represents every failure as state (usually an advisory
// notification) rather than an error.  Unrecognized actions return the input
// unchanged, so newer UI code cannot crash an older engine.
//
// now is the wall-clock instant the action was dispatched; passing it in
// keeps the function deterministic, so replaying a recorded (action, now)
// log reproduces the exact final state.
func Transition(s model.RestaurantState, a Action, now time.Time) model.RestaurantState {
	switch a := a.(type) {
	case AddToCart:
		return applyAddToCart(s, a)
	case UpdateCartQty:
		next := s
		next.Cart = updateCartItemQty(s.Cart, s.Inventory, a.ItemID, a.Delta)
		return next
	case ClearCart:
		next := s
		next.Cart = nil
		return next
	case OpenCheckout:
		next := s
		next.UI.ShowCheckout = true
		return next
	case CloseCheckout:
		next := s
		next.UI.ShowCheckout = false
		return next
	case ConfirmCheckout:
		return applyConfirmCheckout(s, a, now)
	case AdjustStock:
		return applyAdjustStock(s, a)
	case AddInventoryItem:
		return applyAddInventoryItem(s, a)
	case AddReservation:
		return applyAddReservation(s, a)
	case AssignReservationTable:
		return applyAssignReservationTable(s, a)
	case StartReservationService:
		return applyStartReservationService(s, a, now)
	case FinishReservationService:
		return applyFinishReservationService(s, a, now)
	case OpenReservationModal:
		next := s
		next.UI.ShowReservationModal = true
		next.UI.EditingReservationID = a.EditingID
		return next
	case CloseReservationModal:
		next := s
		next.UI.ShowReservationModal = false
		next.UI.EditingReservationID = ""
		return next
	case StageTableAction:
		next := s
		next.UI.PendingTableID = a.TableID
		next.UI.PendingTableAction = a.Action
		return next
	case ConfirmTableAction:
		return applyConfirmTableAction(s, now)
	case SaveClient:
		return applySaveClient(s, a, now)
	case StartOrderTaking:
		return applyStartOrderTaking(s, a)
	case CancelOrderTaking:
		next := s
		next.OrderTaking = nil
		return next
	case ConfirmOrderTaking:
		return applyConfirmOrderTaking(s, a, now)
	case SetKitchenOrderStatus:
		return applySetKitchenOrderStatus(s, a)
	case CompleteKitchenOrder:
		return applyCompleteKitchenOrder(s, a)
	case SelectKitchenOrder:
		next := s
		next.UI.SelectedOrderID = a.OrderID
		return next
	case MarkNotificationRead:
		return applyMarkNotificationRead(s, a)
	case SetActiveTab:
		next := s
		next.ActiveTab = a.Tab
		return next
	case SetSearchTerm:
		next := s
		next.UI.SearchTerm = a.Term
		return next
	case Hydrate:
		next := a.State
		next.Dashboard = buildSnapshot(next.Clients, next.SalesHistory, now)
		return next
	default:
		return s
	}
}

func applyAddToCart(s model.RestaurantState, a AddToCart) model.RestaurantState {
	next := s
	cart := addItemToCart(s.Cart, a.Item, s.Inventory)
	if cartsEqual(cart, s.Cart) {
		advisory := newNotification(&next.Counters, "Stock Insuficiente",
			fmt.Sprintf("No hay stock disponible de %s", a.Item.Name),
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabInventario, DismissOnRead: true})
		next.Notifications = withInventoryAwareNotifications(s.Notifications, []model.Notification{advisory}, s.Inventory)
		return next
	}
	next.Cart = cart
	return next
}

// applyConfirmCheckout commits the cart: an empty cart only
// closes the modal, a cart emptied by reconciliation aborts with an advisory,
// and anything else commits the prepared order in full.
func applyConfirmCheckout(s model.RestaurantState, a ConfirmCheckout, now time.Time) model.RestaurantState {
	next := s
	next.UI.ShowCheckout = false
	if len(s.Cart) == 0 {
		return next
	}

	tableID := 0
	sessionName := ""
	if s.Service != nil {
		tableID = s.Service.TableID
		sessionName = s.Service.SessionName
	}
	prepared := prepareOrder(&next.Counters, s.Cart, s.Inventory, s.KitchenOrders, tableID, a.Waiter, "", now)
	if prepared == nil {
		next.Cart = nil
		advisory := newNotification(&next.Counters, "Stock Insuficiente",
			"Ningún artículo del carrito tiene stock disponible",
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabInventario, DismissOnRead: true})
		next.Notifications = withInventoryAwareNotifications(s.Notifications, []model.Notification{advisory}, s.Inventory)
		return next
	}

	next.Cart = nil
	next.Inventory = prepared.NextInventory
	next.KitchenOrders = prepared.KitchenOrders
	next.SalesHistory = prependSale(s.SalesHistory, prepared.Sale)
	next.Clients = accrueClientSpend(s.Clients, sessionName, prepared.Total, now)
	next.Dashboard = buildSnapshot(next.Clients, next.SalesHistory, now)

	incoming := []model.Notification{newNotification(&next.Counters, "Pedido Confirmado",
		fmt.Sprintf("Comanda %s enviada a cocina", prepared.Order.ID),
		model.Event{Tone: model.NotificationSuccess, NavigateTo: model.TabCocina})}
	if prepared.WasAdjusted {
		incoming = append(incoming, newNotification(&next.Counters, "Comanda Ajustada",
			"Algunas cantidades se ajustaron al stock disponible",
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabInventario, DismissOnRead: true}))
	}
	incoming = append(incoming, stockTransitionNotifications(&next.Counters, s.Inventory, next.Inventory)...)
	next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, next.Inventory)
	return next
}

func applyAdjustStock(s model.RestaurantState, a AdjustStock) model.RestaurantState {
	next := s
	next.Inventory = updateInventoryStock(s.Inventory, a.ItemID, a.Delta)
	next.Cart = reconcileCartWithInventory(s.Cart, next.Inventory)
	incoming := stockTransitionNotifications(&next.Counters, s.Inventory, next.Inventory)
	next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, next.Inventory)
	return next
}

func applyAddInventoryItem(s model.RestaurantState, a AddInventoryItem) model.RestaurantState {
	next := s
	item := a.Item
	maxID := 0
	for _, it := range s.Inventory {
		if it.ID > maxID {
			maxID = it.ID
		}
	}
	item.ID = maxID + 1
	if item.Stock < 0 {
		item.Stock = 0
	}
	if item.Type == "" {
		item.Type = model.ItemTypeDish
	}
	inv := make([]model.MenuItem, len(s.Inventory), len(s.Inventory)+1)
	copy(inv, s.Inventory)
	next.Inventory = append(inv, item)
	incoming := stockTransitionNotifications(&next.Counters, s.Inventory, next.Inventory)
	next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, next.Inventory)
	return next
}

func applyAddReservation(s model.RestaurantState, a AddReservation) model.RestaurantState {
	if s.UI.EditingReservationID != "" {
		return applyEditReservation(s, a)
	}
	next := s
	reservations, tables, created := appendReservationWithTableAssignment(s.Reservations, s.Tables, &next.Counters, a.Draft)
	next.Reservations = reservations
	next.Tables = tables
	next.UI.ShowReservationModal = false

	tone := model.NotificationSuccess
	title := "Reserva Creada"
	if created.IsVIP() {
		tone = model.NotificationVIP
		title = "Reserva VIP"
	}
	msg := fmt.Sprintf("%s, %d pax a las %s", created.Name, created.Guests, created.Time)
	if created.Table == model.TableUnassigned {
		msg += " (sin mesa asignada)"
	}
	confirm := newNotification(&next.Counters, title, msg,
		model.Event{Tone: tone, NavigateTo: model.TabReservas})
	next.Notifications = withInventoryAwareNotifications(s.Notifications, []model.Notification{confirm}, s.Inventory)
	return next
}

// applyEditReservation rewrites the reservation named by the modal's editing
// id.  A requested table that is not available leaves the previous table in
// place and surfaces a "Mesa No Disponible" advisory; the reservation itself
// is never lost over a conflicting click.
func applyEditReservation(s model.RestaurantState, a AddReservation) model.RestaurantState {
	next := s
	next.UI.ShowReservationModal = false
	next.UI.EditingReservationID = ""

	ri := reservationIndex(s.Reservations, s.UI.EditingReservationID)
	if ri < 0 {
		return next
	}
	reservations := make([]model.Reservation, len(s.Reservations))
	copy(reservations, s.Reservations)
	r := reservations[ri]
	r.Name = a.Draft.Name
	r.Time = a.Draft.Time
	r.Guests = a.Draft.Guests
	if a.Draft.Type != "" && a.Draft.Type != r.Type {
		phasePending := r.Pending()
		r.Type = a.Draft.Type
		if phasePending {
			r.Status = pendingStatus(r)
		} else if r.Status == model.ReservationConfirmado || r.Status == model.ReservationVIPReservado {
			r.Status = confirmedStatus(r)
		}
	}
	reservations[ri] = r

	tables := s.Tables
	if r.Table != model.TableUnassigned {
		// keep the bound table's guest count in step with the edit
		if ti := tableIndex(tables, r.Table); ti >= 0 {
			tables = make([]model.TableInfo, len(s.Tables))
			copy(tables, s.Tables)
			tables[ti].Guests = r.Guests
		}
	}

	var incoming []model.Notification
	if a.Draft.Table != r.Table && a.Draft.Table != model.TableUnassigned {
		res2, tab2, ok := assignTableToReservation(reservations, tables, r.ID, a.Draft.Table)
		if ok {
			reservations, tables = res2, tab2
		} else {
			incoming = append(incoming, newNotification(&next.Counters, "Mesa No Disponible",
				fmt.Sprintf("La mesa %d no está disponible; se mantiene la asignación anterior", a.Draft.Table),
				model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabMesas, DismissOnRead: true}))
		}
	}

	next.Reservations = reservations
	next.Tables = tables
	if len(incoming) > 0 {
		next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, s.Inventory)
	}
	return next
}

func applyAssignReservationTable(s model.RestaurantState, a AssignReservationTable) model.RestaurantState {
	if reservationIndex(s.Reservations, a.ReservationID) < 0 || tableIndex(s.Tables, a.TableID) < 0 {
		return s
	}
	next := s
	reservations, tables, ok := assignTableToReservation(s.Reservations, s.Tables, a.ReservationID, a.TableID)
	if !ok {
		advisory := newNotification(&next.Counters, "Mesa No Disponible",
			fmt.Sprintf("La mesa %d no está disponible; se mantiene la asignación anterior", a.TableID),
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabMesas, DismissOnRead: true})
		next.Notifications = withInventoryAwareNotifications(s.Notifications, []model.Notification{advisory}, s.Inventory)
		return next
	}
	next.Reservations = reservations
	next.Tables = tables
	return next
}

func applyStartReservationService(s model.RestaurantState, a StartReservationService, now time.Time) model.RestaurantState {
	ri := reservationIndex(s.Reservations, a.ReservationID)
	if ri < 0 {
		return s
	}
	r := s.Reservations[ri]
	if !r.Holding() || r.Status == model.ReservationEnCurso || r.Table == model.TableUnassigned {
		return s
	}
	ti := tableIndex(s.Tables, r.Table)
	if ti < 0 {
		return s
	}

	next := s
	reservations := make([]model.Reservation, len(s.Reservations))
	copy(reservations, s.Reservations)
	reservations[ri].Status = model.ReservationEnCurso
	next.Reservations = reservations

	tables := make([]model.TableInfo, len(s.Tables))
	copy(tables, s.Tables)
	tables[ti].Status = model.TableOcupada
	tables[ti].Guests = r.Guests
	tables[ti].CurrentSession = &model.TableSession{
		Name:   r.Name,
		Time:   now.Format("15:04"),
		Guests: r.Guests,
		Type:   r.Type,
	}
	next.Tables = tables
	next.Service = &model.ServiceContext{TableID: r.Table, SessionName: r.Name, Guests: r.Guests}
	return next
}

func applyFinishReservationService(s model.RestaurantState, a FinishReservationService, now time.Time) model.RestaurantState {
	ri := reservationIndex(s.Reservations, a.ReservationID)
	if ri < 0 || s.Reservations[ri].Status != model.ReservationEnCurso {
		return s
	}
	r := s.Reservations[ri]

	next := s
	reservations := make([]model.Reservation, len(s.Reservations))
	copy(reservations, s.Reservations)
	reservations[ri].Status = model.ReservationCompletado
	next.Reservations = reservations

	if ti := tableIndex(s.Tables, r.Table); ti >= 0 {
		tables := make([]model.TableInfo, len(s.Tables))
		copy(tables, s.Tables)
		tables[ti].Status = model.TableLimpieza
		tables[ti].Guests = 0
		tables[ti].CurrentSession = nil
		tables[ti].CleaningSince = now.Format("15:04")
		next.Tables = tables
	}
	if s.Service != nil && s.Service.TableID == r.Table {
		next.Service = nil
	}
	return next
}

// applyConfirmTableAction applies the staged table operation and clears the
// staging fields.  Missing staging data or an unknown table is a no-op.
func applyConfirmTableAction(s model.RestaurantState, now time.Time) model.RestaurantState {
	next := s
	next.UI.PendingTableID = 0
	next.UI.PendingTableAction = ""
	ti := tableIndex(s.Tables, s.UI.PendingTableID)
	if ti < 0 || s.UI.PendingTableAction == "" {
		return next
	}

	tables := make([]model.TableInfo, len(s.Tables))
	copy(tables, s.Tables)
	t := tables[ti]
	var incoming []model.Notification

	switch s.UI.PendingTableAction {
	case model.TableActionOcupar:
		if t.Status != model.TableDisponible && t.Status != model.TableReservada {
			return next
		}
		session := &model.TableSession{Name: "Walk-in", Time: now.Format("15:04"), Guests: t.Guests, Type: "estandar"}
		if t.Status == model.TableReservada {
			if ri := reservationOnTable(s.Reservations, t.ID); ri >= 0 {
				r := s.Reservations[ri]
				session = &model.TableSession{Name: r.Name, Time: now.Format("15:04"), Guests: r.Guests, Type: r.Type}
				reservations := make([]model.Reservation, len(s.Reservations))
				copy(reservations, s.Reservations)
				reservations[ri].Status = model.ReservationEnCurso
				next.Reservations = reservations
			}
		}
		t.Status = model.TableOcupada
		t.CurrentSession = session
		t.Guests = session.Guests
		next.Service = &model.ServiceContext{TableID: t.ID, SessionName: session.Name, Guests: session.Guests}
	case model.TableActionLiberar:
		if t.Status != model.TableOcupada {
			return next
		}
		if ri := reservationOnTable(s.Reservations, t.ID); ri >= 0 && s.Reservations[ri].Status == model.ReservationEnCurso {
			reservations := make([]model.Reservation, len(s.Reservations))
			copy(reservations, s.Reservations)
			reservations[ri].Status = model.ReservationCompletado
			next.Reservations = reservations
		}
		t.Status = model.TableDisponible
		t.Guests = 0
		t.CurrentSession = nil
		if s.Service != nil && s.Service.TableID == t.ID {
			next.Service = nil
		}
		incoming = append(incoming, newNotification(&next.Counters, "Mesa Liberada",
			fmt.Sprintf("La mesa %d queda disponible", t.ID),
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabMesas, DismissOnRead: true}))
	case model.TableActionLimpiar:
		if t.Status != model.TableOcupada && t.Status != model.TableDisponible {
			return next
		}
		if ri := reservationOnTable(s.Reservations, t.ID); ri >= 0 && s.Reservations[ri].Status == model.ReservationEnCurso {
			reservations := make([]model.Reservation, len(s.Reservations))
			copy(reservations, s.Reservations)
			reservations[ri].Status = model.ReservationCompletado
			next.Reservations = reservations
		}
		t.Status = model.TableLimpieza
		t.Guests = 0
		t.CurrentSession = nil
		t.CleaningSince = now.Format("15:04")
		if s.Service != nil && s.Service.TableID == t.ID {
			next.Service = nil
		}
	case model.TableActionFinLimpiar:
		if t.Status != model.TableLimpieza {
			return next
		}
		t.Status = model.TableDisponible
		t.CleaningSince = ""
	default:
		return next
	}

	tables[ti] = t
	next.Tables = tables
	if len(incoming) > 0 {
		next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, s.Inventory)
	}
	return next
}

func applySaveClient(s model.RestaurantState, a SaveClient, now time.Time) model.RestaurantState {
	next := s
	clients := make([]model.Client, len(s.Clients), len(s.Clients)+1)
	copy(clients, s.Clients)
	if a.Draft.ID == "" {
		next.Counters.Client++
		tier := a.Draft.Tier
		if tier == "" {
			tier = "nuevo"
		}
		clients = append(clients, model.Client{
			ID:          fmt.Sprintf("cli-%d", next.Counters.Client),
			Name:        a.Draft.Name,
			Tier:        tier,
			Preferences: a.Draft.Preferences,
		})
	} else {
		found := false
		for i, cl := range clients {
			if cl.ID == a.Draft.ID {
				clients[i].Name = a.Draft.Name
				clients[i].Tier = a.Draft.Tier
				clients[i].Preferences = a.Draft.Preferences
				found = true
				break
			}
		}
		if !found {
			return s
		}
	}
	next.Clients = clients
	next.Dashboard = buildSnapshot(next.Clients, next.SalesHistory, now)
	return next
}

func applyStartOrderTaking(s model.RestaurantState, a StartOrderTaking) model.RestaurantState {
	if tableIndex(s.Tables, a.TableID) < 0 {
		return s
	}
	next := s
	next.OrderTaking = &model.OrderTakingContext{TableID: a.TableID, Waiter: a.Waiter}
	return next
}

func applyConfirmOrderTaking(s model.RestaurantState, a ConfirmOrderTaking, now time.Time) model.RestaurantState {
	requested := make([]model.CartItem, 0, len(a.Draft.Lines))
	for _, ln := range a.Draft.Lines {
		if ln.Qty <= 0 {
			continue
		}
		for _, it := range s.Inventory {
			if it.ID == ln.ItemID {
				requested = append(requested, model.CartItem{MenuItem: it, Qty: ln.Qty})
				break
			}
		}
	}

	tableID := a.Draft.TableID
	waiter := a.Draft.Waiter
	notes := a.Draft.Notes
	if s.OrderTaking != nil {
		if tableID == 0 {
			tableID = s.OrderTaking.TableID
		}
		if waiter == "" {
			waiter = s.OrderTaking.Waiter
		}
		if notes == "" {
			notes = s.OrderTaking.Notes
		}
	}

	next := s
	prepared := prepareOrder(&next.Counters, requested, s.Inventory, s.KitchenOrders, tableID, waiter, notes, now)
	if prepared == nil {
		advisory := newNotification(&next.Counters, "Stock Insuficiente",
			"Ningún artículo solicitado tiene stock disponible",
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabInventario, DismissOnRead: true})
		next.Notifications = withInventoryAwareNotifications(s.Notifications, []model.Notification{advisory}, s.Inventory)
		return next
	}

	sessionName := ""
	if ti := tableIndex(s.Tables, tableID); ti >= 0 && s.Tables[ti].CurrentSession != nil {
		sessionName = s.Tables[ti].CurrentSession.Name
	}

	next.Inventory = prepared.NextInventory
	next.Cart = reconcileCartWithInventory(s.Cart, next.Inventory)
	next.KitchenOrders = prepared.KitchenOrders
	next.SalesHistory = prependSale(s.SalesHistory, prepared.Sale)
	next.Clients = accrueClientSpend(s.Clients, sessionName, prepared.Total, now)
	next.Dashboard = buildSnapshot(next.Clients, next.SalesHistory, now)
	next.OrderTaking = nil

	incoming := []model.Notification{newNotification(&next.Counters, "Comanda Enviada",
		fmt.Sprintf("Comanda %s para mesa %d enviada a cocina", prepared.Order.ID, tableID),
		model.Event{Tone: model.NotificationSuccess, NavigateTo: model.TabCocina})}
	if prepared.WasAdjusted {
		incoming = append(incoming, newNotification(&next.Counters, "Comanda Ajustada",
			"Algunas cantidades se ajustaron al stock disponible",
			model.Event{Tone: model.NotificationInfo, NavigateTo: model.TabInventario, DismissOnRead: true}))
	}
	incoming = append(incoming, stockTransitionNotifications(&next.Counters, s.Inventory, next.Inventory)...)
	next.Notifications = withInventoryAwareNotifications(s.Notifications, incoming, next.Inventory)
	return next
}

func applySetKitchenOrderStatus(s model.RestaurantState, a SetKitchenOrderStatus) model.RestaurantState {
	switch a.Status {
	case model.KitchenPending, model.KitchenCooking, model.KitchenReady:
	default:
		return s
	}
	for i, o := range s.KitchenOrders {
		if o.ID != a.OrderID {
			continue
		}
		next := s
		orders := make([]model.KitchenOrder, len(s.KitchenOrders))
		copy(orders, s.KitchenOrders)
		orders[i].Status = a.Status
		next.KitchenOrders = orders
		return next
	}
	return s
}

func applyCompleteKitchenOrder(s model.RestaurantState, a CompleteKitchenOrder) model.RestaurantState {
	orders := make([]model.KitchenOrder, 0, len(s.KitchenOrders))
	found := false
	for _, o := range s.KitchenOrders {
		if o.ID == a.OrderID {
			found = true
			continue
		}
		orders = append(orders, o)
	}
	if !found {
		return s
	}
	next := s
	next.KitchenOrders = orders
	if s.UI.SelectedOrderID == a.OrderID {
		next.UI.SelectedOrderID = ""
	}
	return next
}

// applyMarkNotificationRead acknowledges an entry and navigates to its target
// tab in the same transition; entries flagged dismiss-on-read disappear
// instead of staying as read.
func applyMarkNotificationRead(s model.RestaurantState, a MarkNotificationRead) model.RestaurantState {
	for i, n := range s.Notifications {
		if n.ID != a.ID {
			continue
		}
		next := s
		dismiss := false
		target := defaultTabFor(n.Kind())
		if ev, ok := n.Payload.(model.Event); ok {
			dismiss = ev.DismissOnRead
			if ev.NavigateTo != "" {
				target = ev.NavigateTo
			}
		}
		notifications := make([]model.Notification, 0, len(s.Notifications))
		notifications = append(notifications, s.Notifications[:i]...)
		if !dismiss {
			read := n
			read.Read = true
			notifications = append(notifications, read)
		}
		notifications = append(notifications, s.Notifications[i+1:]...)
		next.Notifications = notifications
		next.ActiveTab = target
		return next
	}
	return s
}

// reservationOnTable finds the live reservation claiming a table, -1 if none.
func reservationOnTable(reservations []model.Reservation, tableID int) int {
	for i, r := range reservations {
		if r.Table == tableID && r.Holding() {
			return i
		}
	}
	return -1
}

// prependSale puts the newest sales record first.
func prependSale(sales []model.SalesRecord, rec model.SalesRecord) []model.SalesRecord {
	next := make([]model.SalesRecord, 0, len(sales)+1)
	next = append(next, rec)
	return append(next, sales...)
}

// accrueClientSpend adds a committed order to the client whose name matches
// the serving session.  No match means no accrual; clients are never created
// implicitly by a sale.
func accrueClientSpend(clients []model.Client, name string, total float64, now time.Time) []model.Client {
	if name == "" {
		return clients
	}
	for i, c := range clients {
		if c.Name != name {
			continue
		}
		next := make([]model.Client, len(clients))
		copy(next, clients)
		c.Visits++
		c.Spend += total
		history := make([]model.VisitRecord, 0, len(c.History)+1)
		history = append(history, model.VisitRecord{Date: now, Total: total})
		history = append(history, clients[i].History...)
		c.History = history
		next[i] = c
		return next
	}
	return clients
}
