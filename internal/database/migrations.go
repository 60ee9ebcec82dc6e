package database

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		salon_name VARCHAR(255) NOT NULL,
		salon_tagline VARCHAR(255) NOT NULL DEFAULT 'Salon & Spa',
		logo_url VARCHAR(500),
		owner_name VARCHAR(255) NOT NULL DEFAULT 'Owner',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID REFERENCES tenants(id) ON DELETE CASCADE,
		role VARCHAR(50) NOT NULL DEFAULT 'owner',
		email VARCHAR(255) UNIQUE NOT NULL,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// Older deployments identified profiles by a separate user_id column
	// instead of sharing the principal id as primary key. Keep both so the
	// resolver's two-key lookup works against either generation.
	`ALTER TABLE profiles ADD COLUMN IF NOT EXISTS user_id UUID UNIQUE`,

	`CREATE TABLE IF NOT EXISTS auth_credentials (
		profile_id UUID PRIMARY KEY REFERENCES profiles(id) ON DELETE CASCADE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		token_hash VARCHAR(255) NOT NULL UNIQUE,
		expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS staff (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone VARCHAR(50),
		role VARCHAR(50) NOT NULL DEFAULT 'stylist',
		color VARCHAR(20),
		commission_rate NUMERIC(5,2) NOT NULL DEFAULT 15.0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		blocked_today BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS services (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		duration INTEGER NOT NULL DEFAULT 30,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(tenant_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS business_hours (
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		weekday INTEGER NOT NULL CHECK (weekday BETWEEN 0 AND 6),
		open_time VARCHAR(5) NOT NULL DEFAULT '09:00',
		close_time VARCHAR(5) NOT NULL DEFAULT '18:00',
		closed BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (tenant_id, weekday)
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(50),
		email VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		client_id UUID REFERENCES clients(id) ON DELETE SET NULL,
		client_name VARCHAR(255) NOT NULL,
		client_phone VARCHAR(50),
		staff_id UUID NOT NULL REFERENCES staff(id) ON DELETE CASCADE,
		service_id UUID NOT NULL REFERENCES services(id) ON DELETE CASCADE,
		start_time TIMESTAMP WITH TIME ZONE NOT NULL,
		end_time TIMESTAMP WITH TIME ZONE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		total_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		source VARCHAR(20) NOT NULL DEFAULT 'dashboard',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS marketing_campaigns (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		name VARCHAR(255) NOT NULL,
		channel VARCHAR(20) NOT NULL DEFAULT 'sms',
		message TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		audience INTEGER NOT NULL DEFAULT 0,
		scheduled_at TIMESTAMP WITH TIME ZONE,
		sent_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS call_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		tenant_id UUID NOT NULL REFERENCES tenants(id) ON DELETE CASCADE,
		caller_name VARCHAR(255),
		caller_phone VARCHAR(50) NOT NULL,
		outcome VARCHAR(20) NOT NULL DEFAULT 'inquiry',
		duration_sec INTEGER NOT NULL DEFAULT 0,
		transcript TEXT,
		booking_id UUID REFERENCES bookings(id) ON DELETE SET NULL,
		started_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_profiles_tenant_id ON profiles(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_user_id ON profiles(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_profile_id ON refresh_tokens(profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_staff_tenant_id ON staff(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_services_tenant_id ON services(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clients_tenant_id ON clients(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_tenant_start ON bookings(tenant_id, start_time)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_staff_id ON bookings(staff_id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_tenant_id ON marketing_campaigns(tenant_id)`,
	`CREATE INDEX IF NOT EXISTS idx_call_logs_tenant_started ON call_logs(tenant_id, started_at)`,

	// Business operations live in SQL functions with named p_ parameters
	// returning a jsonb {success, error, ...} envelope. The Go side only
	// calls them and interprets the envelope.

	`CREATE OR REPLACE FUNCTION rpc_update_branding(
		p_tenant_id UUID,
		p_salon_name TEXT DEFAULT NULL,
		p_salon_tagline TEXT DEFAULT NULL,
		p_logo_url TEXT DEFAULT NULL,
		p_owner_name TEXT DEFAULT NULL
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	BEGIN
		UPDATE tenants SET
			salon_name = COALESCE(p_salon_name, salon_name),
			salon_tagline = COALESCE(p_salon_tagline, salon_tagline),
			logo_url = COALESCE(p_logo_url, logo_url),
			owner_name = COALESCE(p_owner_name, owner_name),
			updated_at = NOW()
		WHERE id = p_tenant_id;
		IF NOT FOUND THEN
			RETURN jsonb_build_object('success', false, 'error', 'tenant not found');
		END IF;
		RETURN jsonb_build_object('success', true);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_add_walkin(
		p_tenant_id UUID,
		p_client_name TEXT,
		p_client_phone TEXT,
		p_service_id UUID,
		p_stylist_id UUID,
		p_start_time TIMESTAMPTZ
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_duration INTEGER;
		v_price NUMERIC;
		v_booking_id UUID;
	BEGIN
		SELECT duration, price INTO v_duration, v_price
		FROM services WHERE id = p_service_id AND tenant_id = p_tenant_id;
		IF NOT FOUND THEN
			RETURN jsonb_build_object('success', false, 'error', 'service not found');
		END IF;
		INSERT INTO bookings (tenant_id, client_name, client_phone, staff_id, service_id,
			start_time, end_time, status, total_price, source)
		VALUES (p_tenant_id, p_client_name, p_client_phone, p_stylist_id, p_service_id,
			p_start_time, p_start_time + make_interval(mins => v_duration), 'confirmed', v_price, 'walkin')
		RETURNING id INTO v_booking_id;
		RETURN jsonb_build_object('success', true, 'booking_id', v_booking_id);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_add_staff(
		p_tenant_id UUID,
		p_name TEXT,
		p_email TEXT,
		p_phone TEXT,
		p_role TEXT,
		p_commission NUMERIC
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_staff_id UUID;
	BEGIN
		INSERT INTO staff (tenant_id, full_name, email, phone, role, commission_rate)
		VALUES (p_tenant_id, p_name, p_email, p_phone, COALESCE(p_role, 'stylist'), COALESCE(p_commission, 15.0))
		RETURNING id INTO v_staff_id;
		RETURN jsonb_build_object('success', true, 'staff_id', v_staff_id);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_update_commission(
		p_tenant_id UUID,
		p_staff_id UUID,
		p_rate NUMERIC
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	BEGIN
		UPDATE staff SET commission_rate = p_rate
		WHERE id = p_staff_id AND tenant_id = p_tenant_id;
		IF NOT FOUND THEN
			RETURN jsonb_build_object('success', false, 'error', 'staff member not found');
		END IF;
		RETURN jsonb_build_object('success', true);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_upsert_service(
		p_tenant_id UUID,
		p_service_id UUID,
		p_name TEXT,
		p_duration INTEGER,
		p_price NUMERIC
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_id UUID;
	BEGIN
		IF p_service_id IS NULL THEN
			INSERT INTO services (tenant_id, name, duration, price)
			VALUES (p_tenant_id, p_name, p_duration, p_price)
			RETURNING id INTO v_id;
		ELSE
			UPDATE services SET name = p_name, duration = p_duration, price = p_price
			WHERE id = p_service_id AND tenant_id = p_tenant_id
			RETURNING id INTO v_id;
			IF NOT FOUND THEN
				RETURN jsonb_build_object('success', false, 'error', 'service not found');
			END IF;
		END IF;
		RETURN jsonb_build_object('success', true, 'service_id', v_id);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_update_hours(
		p_tenant_id UUID,
		p_weekday INTEGER,
		p_open TEXT,
		p_close TEXT,
		p_closed BOOLEAN
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	BEGIN
		INSERT INTO business_hours (tenant_id, weekday, open_time, close_time, closed)
		VALUES (p_tenant_id, p_weekday, p_open, p_close, p_closed)
		ON CONFLICT (tenant_id, weekday) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			closed = EXCLUDED.closed;
		RETURN jsonb_build_object('success', true);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_create_tenant_and_owner(
		p_salon_name TEXT,
		p_owner_name TEXT,
		p_owner_email TEXT,
		p_owner_password_hash TEXT
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_tenant_id UUID;
		v_profile_id UUID;
	BEGIN
		IF EXISTS (SELECT 1 FROM profiles WHERE email = p_owner_email) THEN
			RETURN jsonb_build_object('success', false, 'error', 'email already in use');
		END IF;
		INSERT INTO tenants (name, salon_name, owner_name)
		VALUES (p_salon_name, p_salon_name, p_owner_name)
		RETURNING id INTO v_tenant_id;
		INSERT INTO profiles (tenant_id, role, email, full_name)
		VALUES (v_tenant_id, 'owner', p_owner_email, p_owner_name)
		RETURNING id INTO v_profile_id;
		INSERT INTO auth_credentials (profile_id, password_hash)
		VALUES (v_profile_id, p_owner_password_hash);
		RETURN jsonb_build_object('success', true, 'tenant_id', v_tenant_id, 'profile_id', v_profile_id);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_create_staff_login(
		p_tenant_id UUID,
		p_staff_id UUID,
		p_email TEXT,
		p_password_hash TEXT
	) RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_name TEXT;
		v_profile_id UUID;
	BEGIN
		SELECT full_name INTO v_name FROM staff
		WHERE id = p_staff_id AND tenant_id = p_tenant_id;
		IF NOT FOUND THEN
			RETURN jsonb_build_object('success', false, 'error', 'staff member not found');
		END IF;
		IF EXISTS (SELECT 1 FROM profiles WHERE email = p_email) THEN
			RETURN jsonb_build_object('success', false, 'error', 'email already in use');
		END IF;
		INSERT INTO profiles (tenant_id, role, email, full_name)
		VALUES (p_tenant_id, 'staff', p_email, v_name)
		RETURNING id INTO v_profile_id;
		INSERT INTO auth_credentials (profile_id, password_hash)
		VALUES (v_profile_id, p_password_hash);
		RETURN jsonb_build_object('success', true, 'profile_id', v_profile_id);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_dashboard_stats(p_tenant_id UUID)
	RETURNS JSONB LANGUAGE plpgsql AS $$
	DECLARE
		v_today_bookings INTEGER;
		v_today_revenue NUMERIC;
		v_clients INTEGER;
		v_calls INTEGER;
	BEGIN
		SELECT COUNT(*), COALESCE(SUM(total_price), 0) INTO v_today_bookings, v_today_revenue
		FROM bookings
		WHERE tenant_id = p_tenant_id AND start_time::date = CURRENT_DATE AND status <> 'cancelled';
		SELECT COUNT(*) INTO v_clients FROM clients WHERE tenant_id = p_tenant_id;
		SELECT COUNT(*) INTO v_calls FROM call_logs
		WHERE tenant_id = p_tenant_id AND started_at::date = CURRENT_DATE;
		RETURN jsonb_build_object('success', true,
			'today_bookings', v_today_bookings,
			'today_revenue', v_today_revenue,
			'total_clients', v_clients,
			'today_calls', v_calls);
	END $$`,

	`CREATE OR REPLACE FUNCTION rpc_weekly_revenue(p_tenant_id UUID)
	RETURNS TABLE(day DATE, revenue NUMERIC) LANGUAGE sql AS $$
		SELECT d::date AS day, COALESCE(SUM(b.total_price), 0) AS revenue
		FROM generate_series(CURRENT_DATE - 6, CURRENT_DATE, '1 day') d
		LEFT JOIN bookings b ON b.tenant_id = p_tenant_id
			AND b.start_time::date = d::date AND b.status = 'completed'
		GROUP BY d::date ORDER BY d::date
	$$`,

	`CREATE OR REPLACE FUNCTION rpc_recent_activity(p_tenant_id UUID)
	RETURNS TABLE(kind TEXT, label TEXT, happened_at TIMESTAMPTZ) LANGUAGE sql AS $$
		(SELECT 'booking', client_name || ' booked', created_at
		 FROM bookings WHERE tenant_id = p_tenant_id ORDER BY created_at DESC LIMIT 5)
		UNION ALL
		(SELECT 'call', COALESCE(caller_name, caller_phone) || ' called', started_at
		 FROM call_logs WHERE tenant_id = p_tenant_id ORDER BY started_at DESC LIMIT 5)
		ORDER BY 3 DESC LIMIT 10
	$$`,

	`CREATE OR REPLACE FUNCTION rpc_analytics_revenue(p_tenant_id UUID, p_days INTEGER)
	RETURNS TABLE(day DATE, revenue NUMERIC) LANGUAGE sql AS $$
		SELECT d::date, COALESCE(SUM(b.total_price), 0)
		FROM generate_series(CURRENT_DATE - (p_days - 1), CURRENT_DATE, '1 day') d
		LEFT JOIN bookings b ON b.tenant_id = p_tenant_id
			AND b.start_time::date = d::date AND b.status = 'completed'
		GROUP BY d::date ORDER BY d::date
	$$`,

	`CREATE OR REPLACE FUNCTION rpc_analytics_services(p_tenant_id UUID, p_days INTEGER)
	RETURNS TABLE(service_name TEXT, bookings BIGINT, revenue NUMERIC) LANGUAGE sql AS $$
		SELECT s.name::text, COUNT(b.id), COALESCE(SUM(b.total_price), 0)
		FROM services s
		LEFT JOIN bookings b ON b.service_id = s.id
			AND b.start_time >= CURRENT_DATE - p_days AND b.status <> 'cancelled'
		WHERE s.tenant_id = p_tenant_id
		GROUP BY s.name ORDER BY 3 DESC
	$$`,

	`CREATE OR REPLACE FUNCTION rpc_analytics_statuses(p_tenant_id UUID, p_days INTEGER)
	RETURNS TABLE(status TEXT, total BIGINT) LANGUAGE sql AS $$
		SELECT b.status::text, COUNT(*)
		FROM bookings b
		WHERE b.tenant_id = p_tenant_id AND b.start_time >= CURRENT_DATE - p_days
		GROUP BY b.status
	$$`,

	`CREATE OR REPLACE FUNCTION rpc_staff_board(p_tenant_id UUID)
	RETURNS TABLE(
		staff_id UUID, full_name TEXT, role TEXT, color TEXT,
		commission_rate NUMERIC, active BOOLEAN, blocked_today BOOLEAN,
		bookings BIGINT, revenue NUMERIC, commission NUMERIC
	) LANGUAGE sql AS $$
		SELECT s.id, s.full_name::text, s.role::text, s.color::text,
			s.commission_rate, s.active, s.blocked_today,
			COUNT(b.id),
			COALESCE(SUM(b.total_price), 0),
			COALESCE(SUM(b.total_price), 0) * s.commission_rate / 100
		FROM staff s
		LEFT JOIN bookings b ON b.staff_id = s.id
			AND b.status = 'completed'
			AND date_trunc('month', b.start_time) = date_trunc('month', NOW())
		WHERE s.tenant_id = p_tenant_id
		GROUP BY s.id ORDER BY s.created_at
	$$`,
}
