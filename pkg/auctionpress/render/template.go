package render

// documentBody is the catalogue skeleton. Option labels and machine values go
// through the esc func; the snapshot blocks are pre-escaped JS built by
// snapshot.go. The client script avoids JS template literals on purpose so
// the skeleton can live in one raw string.
const documentBody = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>RPL (R21 Premium League) Catalogue</title>
  <style>
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 40px; background: #f5f7fa; color: #333; }
    .container { max-width: 820px; margin: auto; }
    .header { text-align: center; background: linear-gradient(135deg, #283c86, #45a247); color: white; padding: 28px; border-radius: 14px; box-shadow: 0 6px 20px rgba(0,0,0,0.12); }
    .header h2 { margin: 0; font-size: 28px; letter-spacing: 0.4px; }
    select { width: 100%; padding: 12px; font-size: 16px; border-radius: 10px; border: 1px solid #cfd8dc; margin-top: 20px; margin-bottom: 20px; background: #fff; box-shadow: 0 3px 10px rgba(0,0,0,0.06); }
    .profile-section, .bidding-section { padding: 22px; border-radius: 12px; text-align: center; margin-bottom: 18px; box-shadow: 0 6px 18px rgba(0,0,0,0.08); }
    .profile-section { background: linear-gradient(135deg, #e6f7ec, #a8e6cf); border: 1px solid #7ac785; }
    .bidding-section { background: linear-gradient(135deg, #fff7e6, #ffe082); border: 1px solid #ffb74d; }
    .separator { height: 6px; background: linear-gradient(90deg, #2193b0, #6dd5ed); border-radius: 6px; margin: 20px 0; }
    .banner { text-align: center; font-size: 26px; font-weight: bold; color: white; padding: 16px; border-radius: 12px; margin: 20px 0; box-shadow: 0 8px 24px rgba(0,0,0,0.25); letter-spacing: 1px; }
    .banner-done, .banner-live { background: linear-gradient(90deg, #ff1744, #f50057); }
    .banner-pending { background: linear-gradient(90deg, #1976d2, #42a5f5); }
    .banner .counts { font-size: 15px; font-weight: normal; margin-top: 8px; }
    table { width: 100%; border-collapse: collapse; margin-top: 10px; }
    th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; word-break: break-word; }
    th { background: #f0f0f0; }
    .soldout { color: red; font-weight: bold; background: #fff3f3; padding: 8px; border-radius: 6px; margin-bottom: 10px; display: inline-block; }
    .card-grid { display: flex; flex-wrap: wrap; gap: 12px; margin-top: 16px; }
    .roster-card { flex: 1 1 200px; border: 1px solid #ccc; border-radius: 10px; padding: 10px; background: #fff; box-shadow: 0 4px 12px rgba(0,0,0,0.1); font-size: 14px; }
    .roster-card p { margin: 2px 0; }
    @media screen and (max-width: 600px) { table, th, td { font-size: 14px; padding: 4px 6px; } }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>RPL (R21 Premium League) Catalogue</h2>
    </div>
{{if .Banner}}
    <div class="banner {{.Banner.Style}}">{{.Banner.Message}}{{if .Banner.ShowCounts}}
      <div class="counts">Total: {{.Banner.Total}} &middot; Sold: {{.Banner.Resolved}} &middot; Remaining: {{.Banner.Remaining}}</div>{{end}}
    </div>
{{end}}
    <select id="ownerSelect" onchange="showOwnerDetails()">
      <option value="">-- Select Team - Owner --</option>
{{range .Owners}}      <option value="{{esc .Value}}">{{esc .Label}}</option>
{{end}}    </select>
    <div id="ownerArea"></div>

    <select id="playerSelect" onchange="showDetails()">
      <option value="">-- Select Player --</option>
{{range .Entrants}}      <option value="{{esc .}}">{{esc .}}</option>
{{end}}    </select>
    <div id="contentArea"></div>
  </div>

  <script>
    const IsAuctionData = {{.AuctionMode}};
    const players = {{.PlayersJS}};
    const owners = {{.OwnersJS}};

    function fmtINR(v) {
      if (!v || v.trim() === '') { return ''; }
      var n = Number(v.replace(/,/g, ''));
      if (isNaN(n)) { return ''; }
      return new Intl.NumberFormat('en-IN', { style: 'currency', currency: 'INR', maximumFractionDigits: 0 }).format(n);
    }

    function maskMobile(m) {
      m = m || '';
      if (m.length > 4) {
        m = '*'.repeat(m.length - 4) + m.slice(-4);
      }
      return m;
    }

    function escText(s) {
      var div = document.createElement('div');
      div.innerText = s == null ? '' : s;
      return div.innerHTML;
    }

    function line(label, value) {
      return '<p><b>' + label + ':</b> ' + escText(value || '') + '</p>';
    }

    function photoBlock(photo, alt) {
      if (photo && photo.trim() !== '') {
        return '<div style="position: relative; display: inline-block;">' +
          '<span id="photoLoading" style="color: #ff5722; font-weight: bold;">Please wait, your photo is coming...</span>' +
          '<img src="PlayersPhoto/' + escText(photo) + '" alt="' + escText(alt) + '"' +
          ' style="display:block; max-width:180px; border-radius:12px; border:3px solid #fff; box-shadow:0 6px 14px rgba(0,0,0,0.12); margin-bottom:16px;"' +
          ' onload="document.getElementById(\'photoLoading\').style.display=\'none\';"' +
          ' onerror="document.getElementById(\'photoLoading\').innerText=\'Photo not available\';">' +
          '</div>';
      }
      return '<img src="PlayersPhoto/Image_Not_Given.png" alt="No Photo Available">';
    }

    function showDetails() {
      var name = document.getElementById('playerSelect').value;
      var content = document.getElementById('contentArea');
      if (!name) { content.innerHTML = ''; return; }
      var p = players[name] || {};
      var profileHtml = '';
      if (IsAuctionData && p.soldAt && p.soldAt.trim() !== '') {
        profileHtml += '<div class="soldout">SOLD OUT</div>';
      }
      profileHtml += photoBlock(p.photo, name);
      profileHtml += '<h3>Your Profile Info.</h3>';
      profileHtml += line('Name', p.name);
      profileHtml += line('Tower/Flat', p.towerFlat);
      profileHtml += line('Mobile', p.mobile);
      profileHtml += line('Unavailability', p.unavailability);
      profileHtml += line('Role', p.role);
      if (!IsAuctionData && p.basePrice && p.basePrice.trim() !== '') {
        profileHtml += line('Base Price', fmtINR(p.basePrice));
      }
      var biddingHtml = '<h3>Your Bidding Details</h3>';
      if (!p.soldAt || p.soldAt.trim() === '') {
        biddingHtml += '<p><b>Final Bid:</b> <span style="color:red">This will be decided Post Auction. Auction is scheduled on 1st Nov</span></p>';
      } else {
        biddingHtml += line('Final Bid', fmtINR(p.soldAt));
      }
      biddingHtml += line('Sold To Team', p.toTeam);
      biddingHtml += line('Team Owner Name', p.toOwner);
      biddingHtml += line('Team Owner Mobile', p.ownerMobile);
      content.innerHTML = '<div id="profileSection" class="profile-section">' + profileHtml + '</div>' +
        '<div class="separator"></div>' +
        '<div id="biddingSection" class="bidding-section">' + biddingHtml + '</div>';
    }

    function showOwnerDetails() {
      var team = document.getElementById('ownerSelect').value;
      var ownerArea = document.getElementById('ownerArea');
      if (!team) { ownerArea.innerHTML = ''; return; }
      var o = owners[team] || {};
      var html = '<div class="profile-section">';
      html += '<img src="PlayersPhoto/' + escText(o.photoURL || '') + '" alt="Owner Photo" style="max-width:120px; border-radius:12px; margin-bottom:8px;">';
      html += '<h3>Owner: ' + escText(o.name || '') + '</h3>';
      html += '<p>Team: ' + escText(o.teamName || '') + '</p>';
      if (!IsAuctionData && o.basePrice && o.basePrice.trim() !== '') {
        html += line('Base Price', fmtINR(o.basePrice));
      }
      if (o.sheetData && o.sheetData.length > 0) {
        html += '<div class="card-grid">';
        o.sheetData.forEach(function (r, index) {
          html += '<div class="roster-card">';
          html += line('Player No', String(index + 1));
          html += line('Name', r['Name']);
          html += line('Mobile', maskMobile(r['Mobile']));
          html += line('Bid Amount', fmtINR(r['BidAmount'] || ''));
          if (!IsAuctionData) {
            html += line('Base Price', fmtINR(r['BasePrice'] || ''));
          }
          html += line('Unavailability', r['Unavailability']);
          html += '</div>';
        });
        html += '</div>';
      } else if (IsAuctionData) {
        html += '<p>No data available for this owner.</p>';
      }
      html += '</div>';
      ownerArea.innerHTML = html;
    }

    if (IsAuctionData) {
      var soldOutArea = document.createElement('div');
      soldOutArea.style.marginTop = '40px';
      soldOutArea.innerHTML = '<h3 style="text-align:center; color:red; margin-bottom:20px;">Sold Out Players</h3>';
      var soldContainer = document.createElement('div');
      soldContainer.style.display = 'flex';
      soldContainer.style.flexWrap = 'wrap';
      soldContainer.style.justifyContent = 'center';
      soldContainer.style.gap = '16px';
      Object.keys(players).forEach(function (key) {
        var p = players[key];
        if (p.soldAt && p.soldAt.trim() !== '' && p.toTeam && p.toTeam.trim() !== '') {
          var card = document.createElement('div');
          card.style.position = 'relative';
          card.style.width = '180px';
          card.style.border = '1px solid #ccc';
          card.style.borderRadius = '10px';
          card.style.overflow = 'hidden';
          card.style.textAlign = 'center';
          card.style.boxShadow = '0 4px 12px rgba(0,0,0,0.1)';
          card.style.padding = '8px';
          card.style.background = '#fff';
          var photo = p.photo && p.photo.trim() !== '' ? p.photo : 'Image_Not_Given.png';
          card.innerHTML = '<p style="margin:4px 0; font-weight:bold;">' + escText(p.name) + '</p>' +
            '<div style="position:relative;"><img src="PlayersPhoto/' + escText(photo) + '" style="width:100%; border-radius:8px;">' +
            '<div style="position:absolute; top:0; left:-40px; transform:rotate(-45deg); width:200%; text-align:center; background:rgba(255,0,0,0.7); color:white; font-weight:bold; font-size:16px;">SOLD</div></div>' +
            '<p style="margin:4px 0; font-size:13px;"><b>Sold @:</b> ' + fmtINR(p.soldAt) + '</p>' +
            line('Sold To', p.toTeam) +
            line('Team Owner', p.toOwner);
          soldContainer.appendChild(card);
        }
      });
      soldOutArea.appendChild(soldContainer);
      document.body.appendChild(soldOutArea);
    }
  </script>
{{if .Refresh}}
  <script>
    function refreshPageContent() {
      var xhr = new XMLHttpRequest();
      xhr.open('GET', window.location.href, true);
      xhr.setRequestHeader('Cache-Control', 'no-cache');
      xhr.onreadystatechange = function () {
        if (xhr.readyState === 4 && xhr.status === 200) {
          var parser = new DOMParser();
          var doc = parser.parseFromString(xhr.responseText, 'text/html');
          var newBody = doc.getElementsByTagName('body')[0];
          if (newBody) {
            document.body.innerHTML = newBody.innerHTML;
            var imgs = document.getElementsByTagName('img');
            for (var i = 0; i < imgs.length; i++) {
              var src = imgs[i].src;
              imgs[i].src = src.split('?')[0] + '?t=' + new Date().getTime();
            }
          }
        }
      };
      xhr.send();
    }
    setInterval(refreshPageContent, 10000);
  </script>
{{end}}
</body>
</html>
`
