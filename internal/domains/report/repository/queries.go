package repository

// Orders are attributed to a hotel through their room. Hotels without
// matching orders still appear in booking statistics with zero counts.
const bookingStatisticsQuery = `
SELECT h.id AS hotel_id, h.name AS hotel_name,
	COUNT(o.id) AS total_bookings,
	COUNT(o.id) FILTER (WHERE o.status = 'confirmed') AS confirmed_bookings,
	COUNT(o.id) FILTER (WHERE o.status = 'checked_in') AS check_in_count,
	COUNT(o.id) FILTER (WHERE o.status = 'cancelled') AS cancelled_bookings,
	COUNT(o.id) FILTER (WHERE o.status IN ('confirmed', 'checked_in', 'checked_out')) AS booked_count
FROM hotels h
LEFT JOIN rooms r ON r.hotel_id = h.id
LEFT JOIN orders o ON o.room_id = r.id AND o.created_at >= :start_at AND o.created_at < :end_at
WHERE (:hotel_id = 0 OR h.id = :hotel_id)
GROUP BY h.id, h.name
ORDER BY h.id`

const revenueStatisticsQuery = `
SELECT h.id AS hotel_id, h.name AS hotel_name,
	to_char(to_timestamp(o.created_at) AT TIME ZONE :timezone, 'YYYY-MM') AS month,
	SUM(o.total_amount) AS total_revenue,
	ROUND(AVG(o.total_amount), 2) AS average_room_price,
	COUNT(o.id) AS order_count
FROM hotels h
JOIN rooms r ON r.hotel_id = h.id
JOIN orders o ON o.room_id = r.id
WHERE o.created_at >= :start_at AND o.created_at < :end_at
	AND o.status <> 'cancelled'
	AND (:hotel_id = 0 OR h.id = :hotel_id)
GROUP BY h.id, h.name, month
ORDER BY h.id, month`

// total_rooms is the hotel's room count, not the number of joined order rows.
const occupancyStatisticsQuery = `
SELECT h.id AS hotel_id, h.name AS hotel_name,
	o.check_in_date AS date,
	(SELECT COUNT(*) FROM rooms hr WHERE hr.hotel_id = h.id) AS total_rooms,
	COUNT(o.id) FILTER (WHERE o.status IN ('checked_in', 'checked_out')) AS occupied_rooms
FROM hotels h
JOIN rooms r ON r.hotel_id = h.id
JOIN orders o ON o.room_id = r.id
WHERE o.check_in_date >= :start_date AND o.check_in_date <= :end_date
	AND (:hotel_id = 0 OR h.id = :hotel_id)
GROUP BY h.id, h.name, o.check_in_date
ORDER BY h.id, date`
